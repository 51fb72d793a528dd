// Package domain defines the roster logic for the signups service.
package domain

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when the named activity is not in the catalog.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the activity's roster.
	ErrAlreadySignedUp = errors.New("already signed up")
	// ErrNotSignedUp indicates the email is not on the activity's roster.
	ErrNotSignedUp = errors.New("not signed up")
)

// Catalog captures the roster state operations. Implementations must apply the
// check-then-mutate sequence of SignUp and Unregister atomically.
type Catalog interface {
	List(ctx context.Context) ([]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	SignUp(ctx context.Context, name, email string) (*Activity, error)
	Unregister(ctx context.Context, name, email string) (*Activity, error)
}

// Service orchestrates roster workflows over an injected catalog.
type Service struct {
	catalog Catalog
}

// NewService constructs a Service.
func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// ListActivities returns every activity in catalog order.
func (s *Service) ListActivities(ctx context.Context) ([]Activity, error) {
	return s.catalog.List(ctx)
}

// GetActivity fetches a single activity by name.
func (s *Service) GetActivity(ctx context.Context, name string) (*Activity, error) {
	agg, err := s.catalog.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if agg == nil {
		return nil, ErrActivityNotFound
	}
	return agg, nil
}

// SignUp enrolls the email in the named activity. The roster is append-only on
// this path: the email lands at the end of the participant list. Capacity
// (MaxParticipants) is stored but not enforced; signups past the limit succeed.
func (s *Service) SignUp(ctx context.Context, name, email string) (*Activity, error) {
	return s.catalog.SignUp(ctx, name, email)
}

// Unregister removes the email from the named activity's roster.
func (s *Service) Unregister(ctx context.Context, name, email string) (*Activity, error) {
	return s.catalog.Unregister(ctx, name, email)
}

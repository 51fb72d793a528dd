// Package catalog provides the in-memory activity store backing the roster
// service. The store is seeded once at startup and discarded at shutdown;
// nothing is persisted.
package catalog

import (
	"context"
	"sync"

	"example.com/signups/internal/domain"
)

// InMemoryCatalog stores activities keyed by name and remembers seed order so
// listings stay stable across requests.
type InMemoryCatalog struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
	order      []string
}

// NewInMemoryCatalog constructs a catalog populated from the seed. Later seed
// entries with a duplicate name overwrite earlier ones.
func NewInMemoryCatalog(seed []domain.Activity) *InMemoryCatalog {
	c := &InMemoryCatalog{
		activities: make(map[string]*domain.Activity, len(seed)),
		order:      make([]string, 0, len(seed)),
	}
	for _, act := range seed {
		if _, exists := c.activities[act.Name]; !exists {
			c.order = append(c.order, act.Name)
		}
		stored := act
		stored.Participants = append([]string(nil), act.Participants...)
		c.activities[act.Name] = &stored
	}
	return c
}

// List returns every activity in seed order.
func (c *InMemoryCatalog) List(ctx context.Context) ([]domain.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Activity, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, snapshot(c.activities[name]))
	}
	return out, nil
}

// Get returns the named activity, or nil when it is not in the catalog.
func (c *InMemoryCatalog) Get(ctx context.Context, name string) (*domain.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	act, ok := c.activities[name]
	if !ok {
		return nil, nil
	}
	copied := snapshot(act)
	return &copied, nil
}

// SignUp appends the email to the activity's roster. The membership check and
// the append run under one write lock so concurrent signups cannot race past
// the duplicate check. MaxParticipants is not consulted; the roster may grow
// past the stored limit.
func (c *InMemoryCatalog) SignUp(ctx context.Context, name, email string) (*domain.Activity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	act, ok := c.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if act.HasParticipant(email) {
		return nil, domain.ErrAlreadySignedUp
	}

	act.Participants = append(act.Participants, email)
	copied := snapshot(act)
	return &copied, nil
}

// Unregister removes the email from the activity's roster.
func (c *InMemoryCatalog) Unregister(ctx context.Context, name, email string) (*domain.Activity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	act, ok := c.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}

	for i, p := range act.Participants {
		if p == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			copied := snapshot(act)
			return &copied, nil
		}
	}
	return nil, domain.ErrNotSignedUp
}

func snapshot(act *domain.Activity) domain.Activity {
	copied := *act
	copied.Participants = append([]string(nil), act.Participants...)
	return copied
}

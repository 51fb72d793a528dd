package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	activities map[string]*Activity
}

func (s *stubCatalog) List(ctx context.Context) ([]Activity, error) {
	out := make([]Activity, 0, len(s.activities))
	for _, act := range s.activities {
		out = append(out, *act)
	}
	return out, nil
}

func (s *stubCatalog) Get(ctx context.Context, name string) (*Activity, error) {
	return s.activities[name], nil
}

func (s *stubCatalog) SignUp(ctx context.Context, name, email string) (*Activity, error) {
	act, ok := s.activities[name]
	if !ok {
		return nil, ErrActivityNotFound
	}
	if act.HasParticipant(email) {
		return nil, ErrAlreadySignedUp
	}
	act.Participants = append(act.Participants, email)
	return act, nil
}

func (s *stubCatalog) Unregister(ctx context.Context, name, email string) (*Activity, error) {
	act, ok := s.activities[name]
	if !ok {
		return nil, ErrActivityNotFound
	}
	for i, p := range act.Participants {
		if p == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			return act, nil
		}
	}
	return nil, ErrNotSignedUp
}

func TestGetActivityMapsMissingToNotFound(t *testing.T) {
	service := NewService(&stubCatalog{activities: map[string]*Activity{}})

	_, err := service.GetActivity(context.Background(), "Nonexistent Club")
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestServiceDelegatesRosterErrors(t *testing.T) {
	service := NewService(&stubCatalog{activities: map[string]*Activity{
		"Chess Club": {Name: "Chess Club", MaxParticipants: 12, Participants: []string{"michael@mergington.edu"}},
	}})
	ctx := context.Background()

	_, err := service.SignUp(ctx, "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, ErrAlreadySignedUp)

	_, err = service.Unregister(ctx, "Chess Club", "ghost@mergington.edu")
	require.ErrorIs(t, err, ErrNotSignedUp)

	_, err = service.SignUp(ctx, "Nonexistent Club", "michael@mergington.edu")
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestHasParticipant(t *testing.T) {
	act := Activity{Participants: []string{"a@mergington.edu", "b@mergington.edu"}}

	require.True(t, act.HasParticipant("a@mergington.edu"))
	require.False(t, act.HasParticipant("A@mergington.edu"))
	require.False(t, act.HasParticipant("c@mergington.edu"))
}

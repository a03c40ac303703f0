package scenario

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/futurefunds/retirement-planner/internal/domain"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no scenario with the id belongs to the user.
	ErrNotFound = errors.New("scenario not found")
	// ErrUnauthorized is returned when a request carries no user id.
	ErrUnauthorized = errors.New("unauthorized: missing user id")
	// ErrMissingFields is returned when a scenario has no name.
	ErrMissingFields = errors.New("missing fields")
)

// Store persists named scenarios per user. Scenarios are immutable once created.
type Store interface {
	// Create assigns an id and timestamps and stores s.
	Create(ctx context.Context, s domain.Scenario) (domain.Scenario, error)
	// List returns the user's scenarios, most recently updated first.
	List(ctx context.Context, userID string) ([]domain.Scenario, error)
	// Delete removes the scenario id owned by userID.
	Delete(ctx context.Context, id, userID string) error
}

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// newID returns a fresh scenario identifier.
var newID = func() string { return uuid.NewString() }

// prepare validates s and fills in the generated fields shared by every store.
func prepare(s domain.Scenario) (domain.Scenario, error) {
	if strings.TrimSpace(s.UserID) == "" {
		return s, ErrUnauthorized
	}
	if strings.TrimSpace(s.Name) == "" {
		return s, ErrMissingFields
	}
	now := nowFunc().UTC()
	s.ID = newID()
	s.CreatedAt = now
	s.UpdatedAt = now
	return s, nil
}

func checkDelete(id, userID string) error {
	if id == "" || userID == "" {
		return fmt.Errorf("%w: id and userId are required", ErrMissingFields)
	}
	return nil
}

// sortNewestFirst orders scenarios by UpdatedAt descending, then by id for stability.
func sortNewestFirst(list []domain.Scenario) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].UpdatedAt.Equal(list[j].UpdatedAt) {
			return list[i].UpdatedAt.After(list[j].UpdatedAt)
		}
		return list[i].ID < list[j].ID
	})
}

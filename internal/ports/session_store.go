package ports

import (
	"context"
	"errors"

	"trip-planner-service/internal/domain"
)

// ErrSessionNotFound is returned when a session id has no stored state.
var ErrSessionNotFound = errors.New("session not found")

// Port: persistence boundary for trip-level session state.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*domain.TripSession, error)
	Put(ctx context.Context, session *domain.TripSession) error
	Delete(ctx context.Context, sessionID string) error
}

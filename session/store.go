package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Matches the storefront cookie lifetime of one year.
const TTL = 365 * 24 * time.Hour

type Session struct {
	ID     string `json:"id"`
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
}

// Store keeps sessions server side; the cookie only carries the id.
// Get returns (nil, nil) for an unknown or expired id.
type Store interface {
	Save(ctx context.Context, sess *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

func New(userID uint, role string) *Session {
	return &Session{
		ID:     uuid.NewString(),
		UserID: userID,
		Role:   role,
	}
}

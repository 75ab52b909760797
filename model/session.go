package model

import (
	"time"

	"github.com/google/uuid"
)

// Session identifies one conversation lifetime. A session is created at
// startup and replaced (never mutated) when the user clears the
// conversation; the old session's buffer contents die with it. Nothing about
// a session is persisted.
type Session struct {
	ID        string
	StartedAt time.Time
}

func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
}

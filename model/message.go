package model

import "time"

// Message represents one turn in the conversation. Immutable once created.
type Message struct {
	Role      string // "user" or "assistant"
	Content   string // Raw text from the user or provider
	Rendered  string // Cached rendered markdown for the viewport
	Timestamp time.Time
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note is the domain entity. It does not depend on Gin or the storage layer.
// The repository hands out copies of it, never references into its own state.
type Note struct {
	ID      uuid.UUID
	Title   string
	Content string

	CreatedAt time.Time
	UpdatedAt time.Time
}

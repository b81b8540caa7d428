package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateNoteRequest is the JSON body for POST /notes.
type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"required,min=1"`
}

// UpdateNoteRequest is the JSON body for PUT /notes/{id}.
// Both fields are optional; nil means "leave unchanged". The rule that at
// least one must be present is enforced by the repository, not here.
type UpdateNoteRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content" binding:"omitempty,min=1"`
}

// NoteResponse is the wire representation of a note.
type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageResponse is a plain informational message (health check and friends).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every 4xx/5xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

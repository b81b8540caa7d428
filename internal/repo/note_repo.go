package repo

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dom "github.com/kavia-common/user-notes-manager-222144-222154/internal/domain"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no live note has the requested id.
	ErrNotFound = errors.New("note not found")
	// ErrEmptyUpdate is returned when an update supplies neither field.
	ErrEmptyUpdate = errors.New("at least one of title or content must be provided")
)

type NoteRepo interface {
	Create(ctx context.Context, title, content string) (dom.Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (dom.Note, error)
	List(ctx context.Context) ([]dom.Note, error)
	Update(ctx context.Context, id uuid.UUID, title, content *string) (dom.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemoryNoteRepo keeps all notes in a process-local map. Nothing survives a
// restart.
//
// A RWMutex serializes writers against each other and against readers;
// readers never observe a half-applied update. Notes are stored and returned
// by value, so callers cannot mutate the repository's copy.
type MemoryNoteRepo struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]dom.Note
	order []uuid.UUID // insertion order, breaks created_at ties in List
}

func NewMemoryNoteRepo() *MemoryNoteRepo {
	return &MemoryNoteRepo{notes: make(map[uuid.UUID]dom.Note)}
}

// Create stores a new note with a fresh id and both timestamps set to now.
// Field content is assumed already validated by the caller; the repository
// is pure storage. The timestamp is taken under the lock so it reflects the
// moment of the mutation.
func (r *MemoryNoteRepo) Create(_ context.Context, title, content string) (dom.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	n := dom.Note{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.notes[n.ID] = n
	r.order = append(r.order, n.ID)
	return n, nil
}

// GetByID returns the note with the given id, or ErrNotFound.
func (r *MemoryNoteRepo) GetByID(_ context.Context, id uuid.UUID) (dom.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notes[id]
	if !ok {
		return dom.Note{}, ErrNotFound
	}
	return n, nil
}

// List returns a snapshot of all notes ordered by created_at ascending,
// with creation-time ties resolved by insertion order.
func (r *MemoryNoteRepo) List(_ context.Context) ([]dom.Note, error) {
	r.mu.RLock()
	out := make([]dom.Note, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.notes[id])
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Update replaces only the supplied fields and refreshes updated_at.
// At least one field must be supplied; that rule belongs to the store, not
// the transport. The replacement is a single map assignment of a fully built
// copy, so no partial state is ever observable.
func (r *MemoryNoteRepo) Update(_ context.Context, id uuid.UUID, title, content *string) (dom.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok {
		return dom.Note{}, ErrNotFound
	}
	if title == nil && content == nil {
		return dom.Note{}, ErrEmptyUpdate
	}

	updated := n
	if title != nil {
		updated.Title = *title
	}
	if content != nil {
		updated.Content = *content
	}
	updated.UpdatedAt = time.Now().UTC()
	r.notes[id] = updated
	return updated, nil
}

// Delete removes the note permanently. The id is never reused: ids are
// random UUIDs, so a deleted id denotes "not found" forever after.
func (r *MemoryNoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[id]; !ok {
		return ErrNotFound
	}
	delete(r.notes, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

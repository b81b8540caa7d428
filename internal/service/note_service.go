package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/kavia-common/user-notes-manager-222144-222154/internal/domain"
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/repo"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrEmptyUpdate = errors.New("at least one of title or content must be provided")
	ErrBlankField  = errors.New("title and content must not be blank")
)

// NoteService sits between handlers and the repository: it normalizes input
// and translates repository errors into the sentinels handlers switch on.
// It never sees HTTP.
type NoteService struct {
	repo repo.NoteRepo
}

func NewNoteService(r repo.NoteRepo) *NoteService {
	return &NoteService{repo: r}
}

func (s *NoteService) Create(ctx context.Context, title, content string) (dom.Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	// Whitespace-only input survives the binding layer's min=1; a note must
	// never exist with an empty field, so reject before it reaches the store.
	if title == "" || content == "" {
		return dom.Note{}, ErrBlankField
	}

	return s.repo.Create(ctx, title, content)
}

func (s *NoteService) List(ctx context.Context) ([]dom.Note, error) {
	return s.repo.List(ctx)
}

func (s *NoteService) GetByID(ctx context.Context, id uuid.UUID) (dom.Note, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dom.Note{}, ErrNotFound
		}
		return dom.Note{}, err
	}
	return n, nil
}

func (s *NoteService) Update(ctx context.Context, id uuid.UUID, title, content *string) (dom.Note, error) {
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return dom.Note{}, ErrBlankField
		}
		title = &trimmed
	}
	if content != nil {
		trimmed := strings.TrimSpace(*content)
		if trimmed == "" {
			return dom.Note{}, ErrBlankField
		}
		content = &trimmed
	}

	n, err := s.repo.Update(ctx, id, title, content)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return dom.Note{}, ErrNotFound
		case errors.Is(err, repo.ErrEmptyUpdate):
			return dom.Note{}, ErrEmptyUpdate
		}
		return dom.Note{}, err
	}
	return n, nil
}

func (s *NoteService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

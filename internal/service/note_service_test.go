package service

import (
	"context"
	"testing"

	"github.com/kavia-common/user-notes-manager-222144-222154/internal/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTrimsWhitespace(t *testing.T) {
	svc := NewNoteService(repo.NewMemoryNoteRepo())

	n, err := svc.Create(context.Background(), "  Title  ", "  Content  ")
	require.NoError(t, err)
	assert.Equal(t, "Title", n.Title)
	assert.Equal(t, "Content", n.Content)
}

func TestUpdateTrimsWhitespace(t *testing.T) {
	svc := NewNoteService(repo.NewMemoryNoteRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Title", "Content")
	require.NoError(t, err)

	title := "  New title  "
	updated, err := svc.Update(ctx, created.ID, &title, nil)
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "Content", updated.Content)
}

func TestCreateRejectsBlankFields(t *testing.T) {
	r := repo.NewMemoryNoteRepo()
	svc := NewNoteService(r)
	ctx := context.Background()

	_, err := svc.Create(ctx, "   ", "body")
	assert.ErrorIs(t, err, ErrBlankField)

	_, err = svc.Create(ctx, "title", " \t\n ")
	assert.ErrorIs(t, err, ErrBlankField)

	// Nothing reached the store.
	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateRejectsBlankFields(t *testing.T) {
	svc := NewNoteService(repo.NewMemoryNoteRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Title", "Content")
	require.NoError(t, err)

	blank := " \t "
	_, err = svc.Update(ctx, created.ID, &blank, nil)
	assert.ErrorIs(t, err, ErrBlankField)

	_, err = svc.Update(ctx, created.ID, nil, &blank)
	assert.ErrorIs(t, err, ErrBlankField)

	// The stored note keeps its non-empty fields.
	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Title", got.Title)
	assert.Equal(t, "Content", got.Content)
}

func TestErrorTranslation(t *testing.T) {
	svc := NewNoteService(repo.NewMemoryNoteRepo())
	ctx := context.Background()

	_, err := svc.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	title := "x"
	_, err = svc.Update(ctx, uuid.New(), &title, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New()), ErrNotFound)

	created, err := svc.Create(ctx, "Title", "Content")
	require.NoError(t, err)
	_, err = svc.Update(ctx, created.ID, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

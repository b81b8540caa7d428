package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kavia-common/user-notes-manager-222144-222154/internal/config"
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/dto"

	_ "github.com/kavia-common/user-notes-manager-222144-222154/docs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Setup(r, config.Config{})
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r := newTestEngine(t)

	w := serve(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Healthy"}`, w.Body.String())
}

func TestNoteLifecycle(t *testing.T) {
	r := newTestEngine(t)

	// create
	w := serve(r, http.MethodPost, "/notes", `{"title":"A","content":"B"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.NoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "A", created.Title)
	assert.Equal(t, "B", created.Content)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	id := created.ID.String()

	// read back
	w = serve(r, http.MethodGet, "/notes/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.NoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created, got)

	// partial update: title changes, content survives
	w = serve(r, http.MethodPut, "/notes/"+id, `{"title":"A2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated dto.NoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "A2", updated.Title)
	assert.Equal(t, "B", updated.Content)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	// list contains exactly the one live note
	w = serve(r, http.MethodGet, "/notes", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.NoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "A2", list[0].Title)

	// delete
	w = serve(r, http.MethodDelete, "/notes/"+id, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// gone for good
	w = serve(r, http.MethodGet, "/notes/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), id)

	w = serve(r, http.MethodDelete, "/notes/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmptyUpdateRejected(t *testing.T) {
	r := newTestEngine(t)

	w := serve(r, http.MethodPost, "/notes", `{"title":"A","content":"B"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.NoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = serve(r, http.MethodPut, "/notes/"+created.ID.String(), `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownIDIs404(t *testing.T) {
	r := newTestEngine(t)

	w := serve(r, http.MethodGet, "/notes/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListStartsEmpty(t *testing.T) {
	r := newTestEngine(t)

	w := serve(r, http.MethodGet, "/notes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSwaggerDocServed(t *testing.T) {
	r := newTestEngine(t)

	w := serve(r, http.MethodGet, "/swagger-doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"swagger": "2.0"`)
}

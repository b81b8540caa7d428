package handlers

import (
	"fmt"
	"net/http"

	dom "github.com/kavia-common/user-notes-manager-222144-222154/internal/domain"
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/dto"
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NoteHandler struct {
	svc *service.NoteService
}

func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// List godoc
// @Summary      List notes
// @Description  Retrieve all notes ordered by creation time ascending.
// @Tags         notes
// @Produce      json
// @Success      200  {array}   dto.NoteResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notesToResponses(list))
}

// Create godoc
// @Summary      Create note
// @Description  Create a new note with title and content.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateNoteRequest  true  "Note body"
// @Success      201   {object}  dto.NoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := h.svc.Create(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		if err == service.ErrBlankField {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, noteToResponse(n))
}

// GetByID godoc
// @Summary      Get note
// @Description  Get a single note by its ID.
// @Tags         notes
// @Produce      json
// @Param        id   path      string  true  "Note UUID"
// @Success      200  {object}  dto.NoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /notes/{id} [get]
func (h *NoteHandler) GetByID(c *gin.Context) {
	id, ok := parseNoteID(c)
	if !ok {
		return
	}
	n, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			notFound(c, id)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, noteToResponse(n))
}

// Update godoc
// @Summary      Update note
// @Description  Update a note's title and/or content. At least one field is required.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "Note UUID"
// @Param        body  body      dto.UpdateNoteRequest  true  "Fields to update"
// @Success      200   {object}  dto.NoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	id, ok := parseNoteID(c)
	if !ok {
		return
	}
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.svc.Update(c.Request.Context(), id, req.Title, req.Content)
	if err != nil {
		if err == service.ErrNotFound {
			notFound(c, id)
			return
		}
		if err == service.ErrEmptyUpdate || err == service.ErrBlankField {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, noteToResponse(n))
}

// Delete godoc
// @Summary      Delete note
// @Description  Delete a note by its ID.
// @Tags         notes
// @Param        id   path  string  true  "Note UUID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := parseNoteID(c)
	if !ok {
		return
	}
	err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			notFound(c, id)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseNoteID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid note id %q", raw)})
		return uuid.Nil, false
	}
	return id, true
}

func notFound(c *gin.Context, id uuid.UUID) {
	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("note with id %s not found", id)})
}

func noteToResponse(n dom.Note) dto.NoteResponse {
	return dto.NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func notesToResponses(list []dom.Note) []dto.NoteResponse {
	out := make([]dto.NoteResponse, len(list))
	for i := range list {
		out[i] = noteToResponse(list[i])
	}
	return out
}

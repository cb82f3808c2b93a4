package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkendrick/jobtrack/internal/apperr"
	"github.com/mkendrick/jobtrack/internal/dtos"
	"github.com/mkendrick/jobtrack/internal/services"
)

type TagHandler struct {
	Tags *services.TagService
}

func NewTagHandler(tags *services.TagService) *TagHandler {
	return &TagHandler{Tags: tags}
}

// List is GET /tags.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.Tags.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// Get is GET /tags/:id.
func (h *TagHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tag, err := h.Tags.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// Create is POST /tags.
func (h *TagHandler) Create(c *gin.Context) {
	var req dtos.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	tag, err := h.Tags.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// Update is PUT /tags/:id. The body id must match the path id.
func (h *TagHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.TagUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.ID != id {
		respondError(c, apperr.Conflictf("body id %d does not match path id %d", req.ID, id))
		return
	}
	tag, err := h.Tags.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// Delete is DELETE /tags/:id. Associations referencing the tag are
// removed with it.
func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Tags.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

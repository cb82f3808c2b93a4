package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkendrick/jobtrack/internal/dtos"
	"github.com/mkendrick/jobtrack/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// List is GET /applications. Supports searchTerm, page, pageSize,
// sortBy, sortDir; unrecognized values fall back to defaults.
func (h *ApplicationHandler) List(c *gin.Context) {
	q := &dtos.ApplicationQuery{
		SearchTerm: c.Query("searchTerm"),
		Page:       intQuery(c, "page", 1),
		PageSize:   intQuery(c, "pageSize", services.DefaultPageSize),
		SortBy:     c.DefaultQuery("sortBy", "dateApplied"),
		SortDir:    c.DefaultQuery("sortDir", "desc"),
	}
	page, err := h.Applications.Query(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get is GET /applications/:id.
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	summary, err := h.Applications.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Create is POST /applications.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dtos.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	summary, err := h.Applications.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// Update is PUT /applications/:id. The body id must match the path id.
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.ApplicationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	summary, err := h.Applications.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Delete is DELETE /applications/:id.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Applications.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

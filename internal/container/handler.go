package container

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /containers
// --------------------------------------------------
func (h *Handler) CreateContainer(c *gin.Context) {
	var req struct {
		Label string `json:"label"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	container, err := h.service.Create(req.Label)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, container)
}

// --------------------------------------------------
// GET /containers
// --------------------------------------------------
func (h *Handler) ListContainers(c *gin.Context) {
	containers, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch containers"})
		return
	}

	c.JSON(http.StatusOK, containers)
}

// --------------------------------------------------
// GET /containers/:id
// --------------------------------------------------
func (h *Handler) GetContainer(c *gin.Context) {
	id := c.Param("id")

	container, err := h.service.Get(id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	lines, err := h.service.Lines(id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"container": container,
		"lines":     lines,
	})
}

// --------------------------------------------------
// PATCH /containers/:id
// --------------------------------------------------
func (h *Handler) RenameContainer(c *gin.Context) {
	var req struct {
		Label string `json:"label"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	container, err := h.service.Rename(c.Param("id"), req.Label)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, container)
}

// --------------------------------------------------
// DELETE /containers/:id
// --------------------------------------------------
func (h *Handler) DeleteContainer(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// POST /containers/:id/lines
// --------------------------------------------------
func (h *Handler) AddLine(c *gin.Context) {
	var req struct {
		ItemLabel string  `json:"item_label"`
		Quantity  float64 `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	line, err := h.service.CreateLine(c.Param("id"), req.ItemLabel, req.Quantity)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, line)
}

// --------------------------------------------------
// DELETE /containers/:id/lines/:lineID
// --------------------------------------------------
func (h *Handler) DeleteLine(c *gin.Context) {
	if err := h.service.DeleteLine(c.Param("id"), c.Param("lineID")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// GET /containers/:id/summary
// --------------------------------------------------
func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// --------------------------------------------------
// POST /containers/:id/dictation
// --------------------------------------------------
func (h *Handler) AddDictation(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	lines, err := h.service.AddDictation(c.Param("id"), req.Text)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"lines": lines,
		"count": len(lines),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrLineNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

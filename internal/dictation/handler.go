package dictation

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// --------------------------------------------------
// POST /dictation/parse
// --------------------------------------------------
func (h *Handler) ParseText(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	lines := ParseBatch(req.Text)

	c.JSON(http.StatusOK, gin.H{
		"lines": lines,
		"count": len(lines),
	})
}

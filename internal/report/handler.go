package report

import (
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
// Dashboard overview
// --------------------------------------------------
func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// --------------------------------------------------
// Per-recipe missing-data rows
// --------------------------------------------------
func (h *Handler) MissingData(c *gin.Context) {
	rows, err := h.service.MissingData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

// --------------------------------------------------
// Manual recalculation
// --------------------------------------------------
func (h *Handler) Recalculate(c *gin.Context) {
	summary, err := h.service.Recalculate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

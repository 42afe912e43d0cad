package unit

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// List all units for pickers
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	units, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if units == nil {
		units = []Unit{}
	}
	c.JSON(http.StatusOK, gin.H{"units": units})
}

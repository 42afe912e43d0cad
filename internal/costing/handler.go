package costing

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

type calculateRequest struct {
	Lines []Line `json:"lines"`
}

// --------------------------------------------------
// Ad-hoc cost calculator
// --------------------------------------------------
func (h *Handler) Calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lines are required"})
		return
	}

	result, err := h.engine.EvaluateAll(c.Request.Context(), req.Lines)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

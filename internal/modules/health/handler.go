package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the liveness probe.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the health route onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.check)
}

// check GET /health
func (h *Handler) check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

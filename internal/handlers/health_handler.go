package handlers

import (
	"context"
	"net/http"

	"estatehub/internal/utils"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store   Pinger
	version string
}

func NewHealthHandler(store Pinger, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "estatehub server is running")
}

func (h *HealthHandler) Health(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, utils.CodeUnavailable, "database unreachable: "+err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": h.version,
	})
}

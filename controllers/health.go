package controllers

import (
	"github.com/MindFiv/FivcGlue/service"
	"github.com/gin-gonic/gin"
)

// HealthController represents a controller for health check endpoints
type HealthController struct {
	cache *service.CacheService
}

func NewHealthController(cache *service.CacheService) *HealthController {
	return &HealthController{cache: cache}
}

// Health handles the health check endpoint and reports whether the
// configured cache backend is reachable
func (ctrl HealthController) Health(c *gin.Context) {
	status := "ok"
	connected := ctrl.cache.Healthy()
	if !connected {
		status = "degraded"
	}

	c.JSON(200, gin.H{
		"status":    status,
		"backend":   ctrl.cache.Backend(),
		"connected": connected,
	})
}

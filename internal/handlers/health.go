package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RegisterHealth mounts the liveness endpoint every service exposes.
func RegisterHealth(router *gin.Engine, serviceName string) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":   serviceName,
			"status":    "UP",
			"timestamp": time.Now().UTC(),
		})
	})
}

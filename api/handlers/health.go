package handlers

import (
	"net/http"

	"github.com/foundershield/foundershield/config"
	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": config.ServiceName,
		"version": config.ServiceVersion,
	})
}

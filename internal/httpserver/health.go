package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	RootMessage   = "Travel Agent API is running"
	HealthVersion = "1.0.0"
	ServiceName   = "travel-assistant"
)

// root godoc
// @Summary Service banner
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (srv HTTPServer) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": RootMessage})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probe("healthy"))
}

// readyCheck handles readiness check; the server is ready once routes are mapped.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, probe("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probe("alive"))
}

func probe(status string) gin.H {
	return gin.H{
		"status":    status,
		"version":   HealthVersion,
		"service":   ServiceName,
		"timestamp": response.DateTime(time.Now()),
	}
}

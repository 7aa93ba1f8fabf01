package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/internal/middleware"
)

// RegisterRoutes maps the query endpoint. /query is rate limited per client.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST("/query", mw.RateLimit(), h.Query)
}

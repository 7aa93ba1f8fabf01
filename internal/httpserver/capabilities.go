package httpserver

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/pkg/response"
)

// listCapabilities godoc
// @Summary     List capabilities
// @Description Returns the capability providers with their parameter schemas.
// @Tags        Capabilities
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /capabilities [get]
func (srv HTTPServer) listCapabilities(c *gin.Context) {
	response.OK(c, srv.capabilities.Definitions())
}

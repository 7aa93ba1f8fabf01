package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/pkg/response"
)

// Query godoc
// @Summary     Answer a travel request
// @Description Classifies the request, fulfils it and returns a tagged envelope. Domain failures are reported with success=false and response_type=error, still with status 200. Consumers should treat an unknown response_type as general text.
// @Tags        Query
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Travel request"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Malformed body"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.query.delivery.http.Query: bind: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.JSON(c, h.uc.Answer(ctx, req.toInput()))
}

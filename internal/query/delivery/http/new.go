package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/internal/query"
	"travel-assistant/pkg/log"
)

// Handler is the public interface for the query HTTP delivery layer.
type Handler interface {
	Query(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc query.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the query domain.
func New(l log.Logger, uc query.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

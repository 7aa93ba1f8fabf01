package handler

import (
	"context"

	"travel-assistant/internal/model"
)

// Handler fulfils one intent and returns a tagged result.
type Handler interface {
	Handle(ctx context.Context, query string) (model.Result, error)
}

package query

import (
	"context"

	"travel-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Answer routes one query and always returns an envelope; failures are
	// reported inside it.
	Answer(ctx context.Context, input AnswerInput) model.Envelope
}

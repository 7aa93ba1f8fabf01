package router

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"travel-assistant/internal/handler"
	"travel-assistant/internal/metrics"
	"travel-assistant/internal/model"
	"travel-assistant/internal/reasoning"
	"travel-assistant/pkg/log"
)

// Router is the interface for semantic routing
type Router interface {
	Classify(ctx context.Context, query string) (RouterOutput, error)
	Route(ctx context.Context, query string) (model.Result, error)
}

// SemanticRouter classifies intent and dispatches to a fixed handler table
type SemanticRouter struct {
	reasoner reasoning.Reasoner
	handlers map[model.Intent]handler.Handler
	l        log.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	cfg      Config
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter. handlers must cover every model.Intent.
func New(reasoner reasoning.Reasoner, handlers map[model.Intent]handler.Handler, l log.Logger, m *metrics.Metrics, cfg Config) (*SemanticRouter, error) {
	table := make(map[model.Intent]handler.Handler, len(handlers))
	for _, intent := range model.Intents {
		h, ok := handlers[intent]
		if !ok || h == nil {
			return nil, fmt.Errorf("router: no handler for intent %q", intent)
		}
		table[intent] = h
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = DefaultMinConfidence
	}

	return &SemanticRouter{
		reasoner: reasoner,
		handlers: table,
		l:        l,
		metrics:  m,
		tracer:   otel.Tracer(tracerName),
		cfg:      cfg,
	}, nil
}

package reasoning

import (
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"travel-assistant/pkg/log"
)

// Generator is a Reasoner backed by an LLM in JSON mode.
type Generator struct {
	llm      LLM
	l        log.Logger
	validate *validator.Validate
	tracer   trace.Tracer
	cfg      Config
}

var _ Reasoner = (*Generator)(nil)

// New creates a Generator. Zero config values fall back to defaults.
func New(llm LLM, l log.Logger, cfg Config) *Generator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	return &Generator{
		llm:      llm,
		l:        l,
		validate: validator.New(),
		tracer:   otel.Tracer(tracerName),
		cfg:      cfg,
	}
}

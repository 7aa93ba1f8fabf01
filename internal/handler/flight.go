package handler

import (
	"context"
	"fmt"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/metrics"
	"travel-assistant/internal/model"
	"travel-assistant/internal/reasoning"
	"travel-assistant/pkg/log"
)

// Flight recommends one flight from the flight search capability.
type Flight struct {
	specialist
}

var _ Handler = (*Flight)(nil)

func NewFlight(reasoner reasoning.Reasoner, search agent.Tool, l log.Logger, m *metrics.Metrics) *Flight {
	return &Flight{specialist{reasoner: reasoner, tool: search, l: l, metrics: m}}
}

func (h *Flight) Handle(ctx context.Context, query string) (model.Result, error) {
	records, err := h.search(ctx, LogPrefixFlight, TaskFlightParams, promptFlightParams, query)
	if err != nil {
		return model.Result{}, err
	}

	flights, ok := records.([]model.FlightRecord)
	if !ok {
		return model.Result{}, fmt.Errorf("%s: %w: %T", LogPrefixFlight, ErrUnexpectedRecords, records)
	}
	if len(flights) == 0 {
		return model.Result{}, fmt.Errorf("%s: %w", LogPrefixFlight, ErrNoCandidates)
	}

	input, err := candidatesInput(query, flights)
	if err != nil {
		return model.Result{}, fmt.Errorf("%s: %w", LogPrefixFlight, err)
	}

	var rec model.FlightRecommendation
	err = h.reasoner.Generate(ctx, reasoning.Task{
		Name:         TaskFlightRecommendation,
		Instructions: promptFlightSelect,
		Input:        input,
		Schema:       model.FlightRecommendationSchema(),
		Check: func(out interface{}) error {
			return matchFlight(flights, *out.(*model.FlightRecommendation))
		},
	}, &rec)
	if err != nil {
		return model.Result{}, fmt.Errorf("%s: %w", LogPrefixFlight, err)
	}

	// Reasoner implementations are not required to run Check.
	if err := matchFlight(flights, rec); err != nil {
		return model.Result{}, fmt.Errorf("%s: %w", LogPrefixFlight, err)
	}

	return model.NewFlightResult(rec), nil
}

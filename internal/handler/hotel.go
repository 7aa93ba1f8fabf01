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

// Hotel recommends one hotel from the hotel search capability.
type Hotel struct {
	specialist
}

var _ Handler = (*Hotel)(nil)

func NewHotel(reasoner reasoning.Reasoner, search agent.Tool, l log.Logger, m *metrics.Metrics) *Hotel {
	return &Hotel{specialist{reasoner: reasoner, tool: search, l: l, metrics: m}}
}

func (h *Hotel) Handle(ctx context.Context, query string) (model.Result, error) {
	records, err := h.search(ctx, LogPrefixHotel, TaskHotelParams, promptHotelParams, query)
	if err != nil {
		return model.Result{}, err
	}

	hotels, ok := records.([]model.HotelRecord)
	if !ok {
		return model.Result{}, fmt.Errorf("%s: %w: %T", LogPrefixHotel, ErrUnexpectedRecords, records)
	}
	if len(hotels) == 0 {
		return model.Result{}, fmt.Errorf("%s: %w", LogPrefixHotel, ErrNoCandidates)
	}

	input, err := candidatesInput(query, hotels)
	if err != nil {
		return model.Result{}, fmt.Errorf("%s: %w", LogPrefixHotel, err)
	}

	var rec model.HotelRecommendation
	err = h.reasoner.Generate(ctx, reasoning.Task{
		Name:         TaskHotelRecommendation,
		Instructions: promptHotelSelect,
		Input:        input,
		Schema:       model.HotelRecommendationSchema(),
		Check: func(out interface{}) error {
			return matchHotel(hotels, *out.(*model.HotelRecommendation))
		},
	}, &rec)
	if err != nil {
		return model.Result{}, fmt.Errorf("%s: %w", LogPrefixHotel, err)
	}

	if err := matchHotel(hotels, rec); err != nil {
		return model.Result{}, fmt.Errorf("%s: %w", LogPrefixHotel, err)
	}

	return model.NewHotelResult(rec), nil
}

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

// Planner builds a TravelPlan. It may read the weather but never calls
// another handler.
type Planner struct {
	reasoner reasoning.Reasoner
	weather  agent.Tool
	l        log.Logger
	metrics  *metrics.Metrics
}

var _ Handler = (*Planner)(nil)

// NewPlanner creates a Planner. weather may be nil.
func NewPlanner(reasoner reasoning.Reasoner, weather agent.Tool, l log.Logger, m *metrics.Metrics) *Planner {
	return &Planner{reasoner: reasoner, weather: weather, l: l, metrics: m}
}

type planContext struct {
	Destination string   `json:"destination"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
}

func planContextSchema() map[string]interface{} {
	nullableNumber := map[string]interface{}{"type": []interface{}{"number", "null"}}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"destination": map[string]interface{}{"type": "string"},
			"lat":         nullableNumber,
			"lon":         nullableNumber,
		},
		"required":             []interface{}{"destination", "lat", "lon"},
		"additionalProperties": false,
	}
}

func (h *Planner) Handle(ctx context.Context, query string) (model.Result, error) {
	weather := weatherNotChecked
	if h.weather != nil {
		var pc planContext
		err := h.reasoner.Generate(ctx, reasoning.Task{
			Name:         TaskPlanContext,
			Instructions: promptPlanContext,
			Input:        query,
			Schema:       planContextSchema(),
		}, &pc)
		if err != nil {
			h.l.Warnf(ctx, "%s: plan context, planning without weather: %v", LogPrefixPlanner, err)
		} else {
			weather = h.lookupWeather(ctx, pc)
		}
	}

	var plan model.TravelPlan
	err := h.reasoner.Generate(ctx, reasoning.Task{
		Name:         TaskTravelPlan,
		Instructions: promptTravelPlan,
		Input:        fmt.Sprintf(promptPlanInput, query, weather),
		Schema:       model.TravelPlanSchema(),
	}, &plan)
	if err != nil {
		return model.Result{}, fmt.Errorf("%s: %w", LogPrefixPlanner, err)
	}

	return model.NewPlanResult(plan), nil
}

// lookupWeather always yields a sentence; failures are described, not returned.
func (h *Planner) lookupWeather(ctx context.Context, pc planContext) string {
	if pc.Lat == nil || pc.Lon == nil {
		return weatherNotChecked
	}

	h.metrics.IncCapabilityCall(h.weather.Name())
	out, err := h.weather.Execute(ctx, map[string]interface{}{"lat": *pc.Lat, "lon": *pc.Lon})
	if err != nil {
		h.l.Warnf(ctx, "%s: weather for %s: %v", LogPrefixPlanner, pc.Destination, err)
		return fmt.Sprintf("Weather error: %v", err)
	}

	sentence, ok := out.(string)
	if !ok {
		return fmt.Sprint(out)
	}
	return sentence
}

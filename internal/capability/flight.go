package capability

import (
	"context"

	"travel-assistant/internal/agent"
)

const FlightSearchName = "search_flights"

// FlightSearch looks up flights in the static catalogue.
type FlightSearch struct{}

var _ agent.Tool = (*FlightSearch)(nil)

func NewFlightSearch() *FlightSearch {
	return &FlightSearch{}
}

func (t *FlightSearch) Name() string {
	return FlightSearchName
}

func (t *FlightSearch) Description() string {
	return "Search for flights based on destination. Returns airline, departure_time, arrival_time, price and direct for each option."
}

func (t *FlightSearch) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"origin": map[string]interface{}{
				"type":        "string",
				"description": "Departure city",
			},
			"destination": map[string]interface{}{
				"type":        "string",
				"description": "Arrival city",
			},
			"date": map[string]interface{}{
				"type":        "string",
				"description": "Travel date as written by the traveller, YYYY-MM-DD when known",
			},
		},
		"required":             []interface{}{"origin", "destination", "date"},
		"additionalProperties": false,
	}
}

// Execute returns []model.FlightRecord. Origin and date are accepted but
// do not change the catalogue lookup.
func (t *FlightSearch) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	if _, err := stringParam(params, "origin", false); err != nil {
		return nil, err
	}
	destination, err := stringParam(params, "destination", true)
	if err != nil {
		return nil, err
	}
	if _, err := stringParam(params, "date", false); err != nil {
		return nil, err
	}

	return lookupFlights(destination), nil
}

package capability

import (
	"context"

	"travel-assistant/internal/agent"
)

const HotelSearchName = "search_hotels"

// HotelSearch looks up hotels in the static catalogue.
type HotelSearch struct{}

var _ agent.Tool = (*HotelSearch)(nil)

func NewHotelSearch() *HotelSearch {
	return &HotelSearch{}
}

func (t *HotelSearch) Name() string {
	return HotelSearchName
}

func (t *HotelSearch) Description() string {
	return "Search for hotels in a specific city, optionally capped by a maximum nightly price."
}

func (t *HotelSearch) Parameters() map[string]interface{} {
	optionalString := func(desc string) map[string]interface{} {
		return map[string]interface{}{"type": []interface{}{"string", "null"}, "description": desc}
	}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"city": map[string]interface{}{
				"type":        "string",
				"description": "City to search in",
			},
			"check_in":  optionalString("Check-in date, null when not given"),
			"check_out": optionalString("Check-out date, null when not given"),
			"max_price": map[string]interface{}{
				"type":        []interface{}{"number", "null"},
				"description": "Maximum price per night in USD, null when the traveller gave no limit",
			},
		},
		"required":             []interface{}{"city"},
		"additionalProperties": false,
	}
}

// Execute returns []model.HotelRecord with the max_price post-filter applied.
func (t *HotelSearch) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	city, err := stringParam(params, "city", true)
	if err != nil {
		return nil, err
	}
	for _, key := range []string{"check_in", "check_out"} {
		if _, err := stringParam(params, key, false); err != nil {
			return nil, err
		}
	}
	maxPrice, _, err := numberParam(params, "max_price")
	if err != nil {
		return nil, err
	}

	return filterByMaxPrice(lookupHotels(city), maxPrice), nil
}

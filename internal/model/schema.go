package model

import "sort"

// JSON Schemas for the structured outputs. Each call returns a fresh map so
// callers may not mutate a shared definition.

// FlightRecommendationSchema describes FlightRecommendation.
func FlightRecommendationSchema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"airline":               stringProp("Airline operating the selected flight"),
		"departure_time":        stringProp("Departure time, HH:MM"),
		"arrival_time":          stringProp("Arrival time, HH:MM"),
		"price":                 numberProp("Ticket price in USD", 0),
		"direct_flight":         map[string]interface{}{"type": "boolean"},
		"recommendation_reason": stringProp("Why this flight was chosen"),
	})
}

// HotelRecommendationSchema describes HotelRecommendation.
func HotelRecommendationSchema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"name":            stringProp("Hotel name"),
		"location":        stringProp("Neighbourhood or address"),
		"price_per_night": numberProp("Nightly rate in USD", 0),
		"amenities": map[string]interface{}{
			"type":     "array",
			"items":    map[string]interface{}{"type": "string"},
			"minItems": 1,
		},
		"recommendation_reason": stringProp("Why this hotel was chosen"),
	})
}

// TravelPlanSchema describes TravelPlan.
func TravelPlanSchema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"destination": stringProp("Trip destination"),
		"duration_days": map[string]interface{}{
			"type":    "integer",
			"minimum": 1,
		},
		"budget": numberProp("Estimated total budget in the requested currency", 0),
		"activities": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
		"notes": stringProp("Practical notes, including weather when known"),
	})
}

// objectSchema marks every property as required and forbids extras.
func objectSchema(props map[string]interface{}) map[string]interface{} {
	required := make([]interface{}, 0, len(props))
	for _, key := range sortedKeys(props) {
		required = append(required, key)
	}
	return map[string]interface{}{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func stringProp(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": desc}
}

func numberProp(desc string, min float64) map[string]interface{} {
	return map[string]interface{}{"type": "number", "description": desc, "minimum": min}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package router

import "travel-assistant/internal/model"

// RouterOutput is the structured response of the classification step
type RouterOutput struct {
	Intent     model.Intent `json:"intent" validate:"required"`
	Confidence int          `json:"confidence" validate:"gte=0,lte=100"`
	Reasoning  string       `json:"reasoning"`
}

// Config tunes the router.
type Config struct {
	MinConfidence int
}

func routerOutputSchema() map[string]interface{} {
	intents := make([]interface{}, len(model.Intents))
	for i, intent := range model.Intents {
		intents[i] = string(intent)
	}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"intent":     map[string]interface{}{"type": "string", "enum": intents},
			"confidence": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 100},
			"reasoning":  map[string]interface{}{"type": "string"},
		},
		"required":             []interface{}{"intent", "confidence", "reasoning"},
		"additionalProperties": false,
	}
}

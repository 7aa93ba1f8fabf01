package reasoning

import (
	"context"

	"travel-assistant/pkg/llmprovider"
)

// Reasoner turns free text into a value that conforms to a JSON Schema.
type Reasoner interface {
	// Generate fills out, a pointer to a struct or map, with the model's
	// answer to task. The answer is rejected unless it matches task.Schema
	// and, for structs, the validate tags.
	Generate(ctx context.Context, task Task, out interface{}) error
}

// LLM is the subset of *llmprovider.Manager the reasoner needs.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

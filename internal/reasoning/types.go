package reasoning

// Task is one structured generation step.
type Task struct {
	// Name identifies the step in logs, spans and errors.
	Name string
	// Instructions become the system prompt.
	Instructions string
	// Input is the user message.
	Input string
	// Schema is the JSON Schema the answer must satisfy.
	Schema map[string]interface{}
	// Check, when set, runs on the decoded answer. An error rejects the
	// answer the same way a schema violation does.
	Check func(out interface{}) error
}

// Config tunes a Generator.
type Config struct {
	MaxAttempts int
	Temperature float64
	MaxTokens   int
}

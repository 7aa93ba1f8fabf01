package gemini

import "context"

// IGemini is the generateContent client the travel-assistant Gemini adapter
// drives. Specialists send one system instruction plus the conversation so
// far, usually with JSONMode set so the reply is a bare JSON object for the
// reasoning layer to validate. Safe for concurrent use.
type IGemini interface {
	// GenerateContent posts one generateContent call for the configured model.
	// A non-2xx status or a reply without candidate text is an error.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model is the model name placed in the request path, reported back in
	// provider logs.
	Model() string
}

// New checks cfg, filling the default model, endpoint and HTTP timeout, and
// returns a client. An empty APIKey is rejected so that a missing
// GEMINI_API_KEY fails at startup instead of on the first query.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}

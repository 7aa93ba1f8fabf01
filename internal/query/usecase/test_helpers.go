package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"travel-assistant/pkg/gemini"
	"travel-assistant/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// createManagerFromGeminiClient creates a Provider Manager with a Gemini provider for testing
func createManagerFromGeminiClient(client gemini.IGemini, logger *mockLogger) *llmprovider.Manager {
	provider := llmprovider.NewGeminiAdapter(client)
	config := &llmprovider.Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}
	return llmprovider.NewManager([]llmprovider.Provider{provider}, config, logger)
}

// scriptRule answers requests whose system instruction contains match.
// repair, when set, answers the follow-up sent after a rejected reply.
type scriptRule struct {
	match  string
	reply  func(userMessage string) string
	repair func(userMessage string) string
}

// scriptedGeminiClient plays the model: each request is answered by the
// first rule matching its system instruction.
type scriptedGeminiClient struct {
	mu       sync.Mutex
	rules    []scriptRule
	requests []*gemini.Request
}

func (m *scriptedGeminiClient) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	system := ""
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		system = req.SystemInstruction.Parts[0].Text
	}
	user := ""
	if len(req.Messages) > 0 && len(req.Messages[0].Parts) > 0 {
		user = req.Messages[0].Parts[0].Text
	}

	for _, rule := range m.rules {
		if strings.Contains(system, rule.match) {
			reply := rule.reply
			if rule.repair != nil && len(req.Messages) > 1 {
				reply = rule.repair
			}
			return &gemini.Response{
				Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: reply(user)}}},
				Usage:   gemini.Usage{InputTokens: 10, OutputTokens: 10, TotalTokens: 20},
			}, nil
		}
	}
	return nil, fmt.Errorf("no scripted reply for system instruction %.60q", system)
}

func (m *scriptedGeminiClient) Model() string {
	return "gemini-test"
}

// userMessages returns the first user message of every request whose
// system instruction contains match.
func (m *scriptedGeminiClient) userMessages(match string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for _, req := range m.requests {
		if req.SystemInstruction == nil || !strings.Contains(req.SystemInstruction.Parts[0].Text, match) {
			continue
		}
		out = append(out, req.Messages[0].Parts[0].Text)
	}
	return out
}

func constant(s string) func(string) string {
	return func(string) string { return s }
}

package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"travel-assistant/pkg/gemini"
)

// OpenAIAdapter talks to any OpenAI-compatible chat completions endpoint
// (OpenAI, DashScope/Qwen, DeepSeek, local gateways).
type OpenAIAdapter struct {
	name   string
	model  string
	client *openai.Client
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter
func NewOpenAIAdapter(name string, client *openai.Client, model string) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, model: model, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1),
	}
	if req.SystemInstruction != "" {
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	for _, msg := range req.Messages {
		role := openai.ChatMessageRoleUser
		if msg.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		if isRateLimited(err) {
			return nil, fmt.Errorf("%s: %w: %v", a.name, ErrProviderRateLimited, err)
		}
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	out := &Response{
		Content:      Message{Role: RoleAssistant},
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Content.Content = resp.Choices[0].Message.Content
	}
	return out, nil
}

func isRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    convertToGeminiContents(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
	}
	if req.SystemInstruction != "" {
		geminiReq.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: req.SystemInstruction}}}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Gemini calls the assistant role "model".
func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		role := "user"
		if msg.Role == RoleAssistant {
			role = "model"
		}
		contents[i] = gemini.Content{Role: role, Parts: []gemini.Part{{Text: msg.Content}}}
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	msg := Message{Role: RoleAssistant}
	for _, p := range content.Parts {
		msg.Content += p.Text
	}
	return msg
}

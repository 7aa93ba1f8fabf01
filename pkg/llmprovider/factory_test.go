package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-assistant/config"
)

func TestInitializeProviders_SortsAndFilters(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g", Model: "gemini-2.5-flash"},
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "o", Model: "gpt-4o-mini"},
			{Name: "deepseek", Enabled: false, Priority: 3, APIKey: "d", Model: "deepseek-chat"},
		},
	}

	providers, err := InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("InitializeProviders() error = %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "openai" || providers[1].Name() != "gemini" {
		t.Errorf("unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
	}
}

func TestInitializeProviders_SkipsBrokenProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "unknown", Enabled: true, Priority: 1, APIKey: "x", Model: "m"},
			{Name: "qwen", Enabled: true, Priority: 2, APIKey: "q", Model: "qwen-plus"},
		},
	}

	providers, err := InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("InitializeProviders() error = %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "qwen" {
		t.Fatalf("expected only qwen, got %d providers", len(providers))
	}
}

func TestInitializeProviders_NoneEnabled(t *testing.T) {
	_, err := InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "openai", Model: "m", APIKey: "k"}},
	})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestOpenAIAdapter_JSONMode(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "travel-model",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"intent\":\"plan\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17}
		}`))
	}))
	defer server.Close()

	provider, err := createProvider(config.ProviderConfig{
		Name:    "openai",
		APIKey:  "secret",
		BaseURL: server.URL + "/v1",
		Model:   "travel-model",
		Timeout: "5s",
	})
	if err != nil {
		t.Fatalf("createProvider() error = %v", err)
	}

	resp, err := provider.GenerateContent(context.Background(), &Request{
		SystemInstruction: "classify",
		Messages:          []Message{{Role: RoleUser, Content: "Plan a trip"}},
		JSONMode:          true,
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}

	if resp.Text() != `{"intent":"plan"}` {
		t.Errorf("unexpected content %q", resp.Text())
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 17 {
		t.Errorf("unexpected usage %+v", resp.Usage)
	}

	format, _ := captured["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Errorf("expected json_object response format, got %v", captured["response_format"])
	}
	messages, _ := captured["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(messages))
	}
	first, _ := messages[0].(map[string]any)
	if first["role"] != "system" {
		t.Errorf("expected system message first, got %v", first["role"])
	}
}

func TestOpenAIAdapter_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "slow down", "type": "rate_limit", "code": "rate_limit_exceeded"}}`))
	}))
	defer server.Close()

	provider, err := createProvider(config.ProviderConfig{
		Name:    "deepseek",
		APIKey:  "secret",
		BaseURL: server.URL,
		Model:   "deepseek-chat",
	})
	if err != nil {
		t.Fatalf("createProvider() error = %v", err)
	}

	_, err = provider.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if !errors.Is(err, ErrProviderRateLimited) {
		t.Fatalf("expected ErrProviderRateLimited, got %v", err)
	}
}

func TestResolveBaseURL(t *testing.T) {
	if got := resolveBaseURL(config.ProviderConfig{Name: "qwen"}); got != QwenBaseURL {
		t.Errorf("qwen: got %q", got)
	}
	if got := resolveBaseURL(config.ProviderConfig{Name: "deepseek"}); got != DeepSeekBaseURL {
		t.Errorf("deepseek: got %q", got)
	}
	if got := resolveBaseURL(config.ProviderConfig{Name: "openai", BaseURL: "http://x/v1/"}); got != "http://x/v1" {
		t.Errorf("openai: got %q", got)
	}
	if got := resolveBaseURL(config.ProviderConfig{Name: "openai"}); got != "" {
		t.Errorf("openai default: got %q", got)
	}
}

package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"travel-assistant/config"
	"travel-assistant/pkg/gemini"
)

// Base URLs for OpenAI-compatible vendors selected by provider name.
const (
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	DeepSeekBaseURL = "https://api.deepseek.com/v1"

	defaultProviderTimeout = 60 * time.Second
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("%s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	httpClient := &http.Client{Timeout: parseTimeout(cfg.Timeout)}

	switch cfg.Name {
	case "openai", "qwen", "alibaba", "deepseek":
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		clientCfg.HTTPClient = httpClient
		if baseURL := resolveBaseURL(cfg); baseURL != "" {
			clientCfg.BaseURL = baseURL
		}
		return NewOpenAIAdapter(cfg.Name, openai.NewClientWithConfig(clientCfg), cfg.Model), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}

func resolveBaseURL(cfg config.ProviderConfig) string {
	if cfg.BaseURL != "" {
		return strings.TrimRight(cfg.BaseURL, "/")
	}
	switch cfg.Name {
	case "qwen", "alibaba":
		return QwenBaseURL
	case "deepseek":
		return DeepSeekBaseURL
	}
	return ""
}

func parseTimeout(raw string) time.Duration {
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return defaultProviderTimeout
}

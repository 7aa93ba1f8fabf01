package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Tracing    TracingConfig

	// Travel assistant specifics
	Query   QueryConfig
	Weather WeatherConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// QueryConfig bounds a single /query request.
type QueryConfig struct {
	Timeout time.Duration
}

// WeatherConfig configures the OpenWeatherMap capability. An empty APIKey
// is allowed and only degrades weather lookups.
type WeatherConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// TracingConfig enables OTLP/HTTP span export.
type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
	MaxTrackedIPs  int
	ClientTTL      time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	// Temperature applies to every structured generation call.
	Temperature float64 `yaml:"temperature"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxTrackedIPs = v.GetInt("rate_limit.max_tracked_ips")
	cfg.RateLimit.ClientTTL = v.GetDuration("rate_limit.client_ttl")

	cfg.Tracing.Enabled = v.GetBool("tracing.enabled")
	cfg.Tracing.Endpoint = v.GetString("tracing.endpoint")
	cfg.Tracing.ServiceName = v.GetString("tracing.service_name")

	// Travel assistant specifics
	cfg.Query.Timeout = v.GetDuration("query.timeout")
	cfg.Weather.APIKey = expandEnvVar(v, v.GetString("weather.api_key"))
	cfg.Weather.BaseURL = v.GetString("weather.base_url")
	cfg.Weather.Timeout = v.GetDuration("weather.timeout")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")

	// Load provider configurations
	if v.IsSet("llm.providers") {
		providersRaw := v.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  expandEnvVar(v, getStringFromMap(providerMap, "base_url")),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// BASE_URL / API_KEY / MODEL_NAME describe a single OpenAI-compatible endpoint.
	if len(cfg.LLM.Providers) == 0 {
		provider, err := providerFromEnv(v)
		if err != nil {
			return nil, err
		}
		cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 30)
	v.SetDefault("rate_limit.burst", 5)
	v.SetDefault("rate_limit.max_tracked_ips", 10000)
	v.SetDefault("rate_limit.client_ttl", "10m")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "travel-assistant")

	v.SetDefault("query.timeout", "60s")
	v.SetDefault("weather.base_url", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("weather.timeout", "10s")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "50s")
	v.SetDefault("llm.temperature", 0.2)
}

// providerFromEnv builds the single provider described by the BASE_URL,
// API_KEY and MODEL_NAME variables. All three are required.
func providerFromEnv(v *viper.Viper) (ProviderConfig, error) {
	baseURL := v.GetString("base_url")
	apiKey := v.GetString("api_key")
	model := v.GetString("model_name")

	if baseURL == "" || apiKey == "" || model == "" {
		return ProviderConfig{}, fmt.Errorf("no LLM providers configured: please set BASE_URL, API_KEY, and MODEL_NAME or add an llm.providers section to config.yaml")
	}

	return ProviderConfig{
		Name:     "openai",
		Enabled:  true,
		Priority: 1,
		APIKey:   apiKey,
		BaseURL:  baseURL,
		Model:    model,
		Timeout:  "60s",
	}, nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true

		if provider.APIKey == "" {
			return fmt.Errorf("provider %s: api key is required", provider.Name)
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

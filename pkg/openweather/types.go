package openweather

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingAPIKey is returned by Current when no API key is configured.
var ErrMissingAPIKey = errors.New("openweather: api key missing")

// StatusError is returned for any non-200 reply.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openweather: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Config holds client configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
}

// Current is the subset of the current weather reply the service uses.
type Current struct {
	Lat         float64
	Lon         float64
	Description string
	TempC       float64
}

type currentResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

type client struct {
	cfg Config
}

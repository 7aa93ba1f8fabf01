package openweather

import "context"

// IClient reads current conditions from OpenWeatherMap.
type IClient interface {
	// Current returns the weather at the given coordinates in metric units.
	Current(ctx context.Context, lat, lon float64) (*Current, error)
	// HasAPIKey reports whether the client was configured with a key.
	HasAPIKey() bool
}

// New creates a new OpenWeatherMap client. A missing API key is not an
// error here; Current returns ErrMissingAPIKey instead.
func New(cfg Config) IClient {
	cfg.applyDefaults()
	return &client{cfg: cfg}
}

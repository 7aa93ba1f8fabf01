package capability

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"travel-assistant/internal/agent"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/openweather"
)

const WeatherName = "get_weather_forecast"

// Sentences returned instead of errors when weather cannot be read.
const (
	WeatherKeyMissing  = "Weather API key missing. Assume sunny."
	WeatherUnavailable = "Weather unavailable."
)

// Weather reports current conditions as a sentence. It never returns an
// error for upstream failures.
type Weather struct {
	client openweather.IClient
	l      log.Logger
}

var _ agent.Tool = (*Weather)(nil)

func NewWeather(client openweather.IClient, l log.Logger) *Weather {
	return &Weather{client: client, l: l}
}

func (t *Weather) Name() string {
	return WeatherName
}

func (t *Weather) Description() string {
	return "Get the current weather at a latitude/longitude."
}

func (t *Weather) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"lat": map[string]interface{}{"type": "number", "minimum": -90, "maximum": 90},
			"lon": map[string]interface{}{"type": "number", "minimum": -180, "maximum": 180},
		},
		"required":             []interface{}{"lat", "lon"},
		"additionalProperties": false,
	}
}

// Execute returns a string. Only malformed parameters produce an error.
func (t *Weather) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	lat, okLat, err := numberParam(params, "lat")
	if err != nil {
		return nil, err
	}
	lon, okLon, err := numberParam(params, "lon")
	if err != nil {
		return nil, err
	}
	if !okLat || !okLon {
		return nil, fmt.Errorf("lat and lon parameters are required")
	}

	return t.Forecast(ctx, lat, lon), nil
}

// Forecast is the typed form of Execute.
func (t *Weather) Forecast(ctx context.Context, lat, lon float64) string {
	current, err := t.client.Current(ctx, lat, lon)
	if err != nil {
		var statusErr *openweather.StatusError
		switch {
		case errors.Is(err, openweather.ErrMissingAPIKey):
			return WeatherKeyMissing
		case errors.As(err, &statusErr):
			t.l.Warnf(ctx, "internal.capability.Weather: upstream status %d", statusErr.StatusCode)
			return WeatherUnavailable
		default:
			t.l.Warnf(ctx, "internal.capability.Weather: %v", err)
			return fmt.Sprintf("Weather error: %v", err)
		}
	}

	return fmt.Sprintf("Weather at (%s, %s): %s, %s°C.",
		formatFloat(lat), formatFloat(lon), current.Description, formatFloat(current.TempC))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

func (c *client) HasAPIKey() bool {
	return c.cfg.APIKey != ""
}

// Current calls GET /weather?lat=&lon=&appid=&units=metric.
func (c *client) Current(ctx context.Context, lat, lon float64) (*Current, error) {
	if !c.HasAPIKey() {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", c.cfg.APIKey)
	params.Set("units", unitsMetric)

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + currentWeatherPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("openweather: create request: %w", err)
	}

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweather: request failed: %w", stripURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("openweather: decode response: %w", err)
	}

	out := &Current{Lat: lat, Lon: lon, TempC: payload.Main.Temp}
	if len(payload.Weather) > 0 {
		out.Description = payload.Weather[0].Description
	}
	return out, nil
}

// stripURL drops the request URL, which carries the appid, from transport
// errors.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

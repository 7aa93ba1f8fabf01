package capability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/openweather"
)

func searchHotels(t *testing.T, params map[string]interface{}) []model.HotelRecord {
	t.Helper()
	out, err := NewHotelSearch().Execute(context.Background(), params)
	require.NoError(t, err)
	hotels, ok := out.([]model.HotelRecord)
	require.True(t, ok, "unexpected result type %T", out)
	return hotels
}

func TestFlightSearch_Catalogue(t *testing.T) {
	tests := []struct {
		destination string
		airlines    []string
	}{
		{"Sylhet", []string{"Biman Bangladesh", "US-Bangla"}},
		{"  BANGKOK, Thailand", []string{"Thai Airways", "Biman Bangladesh"}},
		{"Reykjavik", []string{"Global Air", "Eco Fly"}},
	}

	for _, tt := range tests {
		t.Run(tt.destination, func(t *testing.T) {
			out, err := NewFlightSearch().Execute(context.Background(), map[string]interface{}{
				"origin": "Dhaka", "destination": tt.destination, "date": "2025-06-01",
			})
			require.NoError(t, err)

			flights := out.([]model.FlightRecord)
			require.Len(t, flights, len(tt.airlines))
			for i, f := range flights {
				assert.Equal(t, tt.airlines[i], f.Airline)
			}
		})
	}
}

func TestFlightSearch_RequiresDestination(t *testing.T) {
	_, err := NewFlightSearch().Execute(context.Background(), map[string]interface{}{"origin": "Dhaka"})
	assert.Error(t, err)
}

func TestHotelSearch_NoFilterReturnsFullSet(t *testing.T) {
	for _, params := range []map[string]interface{}{
		{"city": "Sylhet"},
		{"city": "Sylhet", "max_price": nil},
		{"city": "Sylhet", "max_price": float64(0)},
	} {
		hotels := searchHotels(t, params)
		require.Len(t, hotels, 2)
		assert.Equal(t, "Grand Sylhet Hotel", hotels[0].Name)
		assert.Equal(t, "Rose View Hotel", hotels[1].Name)
	}
}

func TestHotelSearch_MaxPriceFilter(t *testing.T) {
	for _, city := range []string{"Paris", "Sylhet", "Dhaka", "Lisbon"} {
		for _, maxPrice := range []float64{50, 75, 90, 100, 140, 200, 1000} {
			full := searchHotels(t, map[string]interface{}{"city": city})
			filtered := searchHotels(t, map[string]interface{}{"city": city, "max_price": maxPrice})

			var want []model.HotelRecord
			for _, h := range full {
				if h.PricePerNight <= maxPrice {
					want = append(want, h)
				}
			}
			assert.Equal(t, len(want), len(filtered), "city=%s max=%v", city, maxPrice)
			for _, h := range filtered {
				assert.LessOrEqual(t, h.PricePerNight, maxPrice)
			}
		}
	}
}

func TestHotelSearch_ScenarioUnderHundredInSylhet(t *testing.T) {
	hotels := searchHotels(t, map[string]interface{}{"city": "Sylhet", "max_price": 100})
	require.Len(t, hotels, 2)
	for _, h := range hotels {
		assert.LessOrEqual(t, h.PricePerNight, 100.0)
	}
}

func TestHotelSearch_UnknownCityIsNeverEmpty(t *testing.T) {
	hotels := searchHotels(t, map[string]interface{}{"city": "new york"})
	require.Len(t, hotels, 2)
	assert.Equal(t, "New York City Center Hotel", hotels[0].Name)
	assert.Equal(t, "The New York Inn", hotels[1].Name)
	assert.Equal(t, []string{"WiFi", "Restaurant"}, hotels[0].Amenities)
}

func TestHotelSearch_CatalogueIsNotMutated(t *testing.T) {
	first := searchHotels(t, map[string]interface{}{"city": "Paris"})
	first[0].Amenities[0] = "changed"
	first[0].Name = "changed"

	second := searchHotels(t, map[string]interface{}{"city": "Paris"})
	assert.Equal(t, "Hotel Eiffel Paris", second[0].Name)
	assert.Equal(t, "WiFi", second[0].Amenities[0])
}

func TestHotelSearch_BadParams(t *testing.T) {
	_, err := NewHotelSearch().Execute(context.Background(), map[string]interface{}{"city": "Paris", "max_price": "cheap"})
	assert.Error(t, err)

	_, err = NewHotelSearch().Execute(context.Background(), map[string]interface{}{})
	assert.Error(t, err)
}

type fakeWeatherClient struct {
	current *openweather.Current
	err     error
	hasKey  bool
}

func (f *fakeWeatherClient) Current(ctx context.Context, lat, lon float64) (*openweather.Current, error) {
	return f.current, f.err
}

func (f *fakeWeatherClient) HasAPIKey() bool { return f.hasKey }

func TestWeather_Degrades(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeWeatherClient
		want   string
	}{
		{
			name:   "success",
			client: &fakeWeatherClient{hasKey: true, current: &openweather.Current{Description: "light rain", TempC: 27.5}},
			want:   "Weather at (24.9, 91.87): light rain, 27.5°C.",
		},
		{
			name:   "missing key",
			client: &fakeWeatherClient{err: openweather.ErrMissingAPIKey},
			want:   WeatherKeyMissing,
		},
		{
			name:   "non-200",
			client: &fakeWeatherClient{hasKey: true, err: &openweather.StatusError{StatusCode: 500}},
			want:   WeatherUnavailable,
		},
		{
			name:   "transport error",
			client: &fakeWeatherClient{hasKey: true, err: errors.New("dial tcp: timeout")},
			want:   "Weather error: dial tcp: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWeather(tt.client, log.NewNop())
			out, err := w.Execute(context.Background(), map[string]interface{}{"lat": 24.9, "lon": 91.87})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestWeather_TransportErrorDoesNotLeakKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := openweather.New(openweather.Config{APIKey: "SECRET123", BaseURL: baseURL})
	out := NewWeather(client, log.NewNop()).Forecast(context.Background(), 1, 2)

	assert.Contains(t, out, "Weather error: ")
	assert.NotContains(t, out, "SECRET123")
	assert.NotContains(t, out, "appid")
}

func TestWeather_RequiresCoordinates(t *testing.T) {
	w := NewWeather(&fakeWeatherClient{}, log.NewNop())
	_, err := w.Execute(context.Background(), map[string]interface{}{"lat": 1.0})
	assert.Error(t, err)
}

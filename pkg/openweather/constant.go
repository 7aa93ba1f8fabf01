package openweather

import "time"

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultTimeout = 10 * time.Second

	currentWeatherPath = "/weather"
	unitsMetric        = "metric"
)

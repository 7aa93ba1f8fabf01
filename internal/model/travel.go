package model

// FlightRecord is one row returned by the flight search capability.
type FlightRecord struct {
	Airline       string  `json:"airline"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price"`
	Direct        bool    `json:"direct"`
}

// HotelRecord is one row returned by the hotel search capability.
type HotelRecord struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
}

// FlightRecommendation is the validated output of the flight handler.
type FlightRecommendation struct {
	Airline              string  `json:"airline" validate:"required"`
	DepartureTime        string  `json:"departure_time" validate:"required"`
	ArrivalTime          string  `json:"arrival_time" validate:"required"`
	Price                float64 `json:"price" validate:"gte=0"`
	DirectFlight         bool    `json:"direct_flight"`
	RecommendationReason string  `json:"recommendation_reason" validate:"required"`
}

// HotelRecommendation is the validated output of the hotel handler.
type HotelRecommendation struct {
	Name                 string   `json:"name" validate:"required"`
	Location             string   `json:"location" validate:"required"`
	PricePerNight        float64  `json:"price_per_night" validate:"gte=0"`
	Amenities            []string `json:"amenities" validate:"min=1,dive,required"`
	RecommendationReason string   `json:"recommendation_reason" validate:"required"`
}

// TravelPlan is the validated output of the planning handler.
type TravelPlan struct {
	Destination  string   `json:"destination" validate:"required"`
	DurationDays int      `json:"duration_days" validate:"gt=0"`
	Budget       float64  `json:"budget" validate:"gte=0"`
	Activities   []string `json:"activities" validate:"dive,required"`
	Notes        string   `json:"notes"`
}

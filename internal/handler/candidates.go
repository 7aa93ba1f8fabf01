package handler

import (
	"fmt"
	"slices"
	"strings"

	"travel-assistant/internal/model"
)

// matchFlight accepts rec only when it copies one of flights unchanged.
func matchFlight(flights []model.FlightRecord, rec model.FlightRecommendation) error {
	named := false
	for _, f := range flights {
		if !sameName(f.Airline, rec.Airline) {
			continue
		}
		named = true
		if f.DepartureTime == rec.DepartureTime &&
			f.ArrivalTime == rec.ArrivalTime &&
			f.Price == rec.Price &&
			f.Direct == rec.DirectFlight {
			return nil
		}
	}

	if !named {
		return fmt.Errorf("%w: airline %q", ErrNotACandidate, rec.Airline)
	}
	return fmt.Errorf("%w: %s flight %s-%s at %v (direct=%t) does not match any listed %s flight",
		ErrNotACandidate, rec.Airline, rec.DepartureTime, rec.ArrivalTime, rec.Price, rec.DirectFlight, rec.Airline)
}

// matchHotel accepts rec only when it copies one of hotels unchanged.
func matchHotel(hotels []model.HotelRecord, rec model.HotelRecommendation) error {
	for _, h := range hotels {
		if !sameName(h.Name, rec.Name) {
			continue
		}
		if h.Location == rec.Location &&
			h.PricePerNight == rec.PricePerNight &&
			slices.Equal(h.Amenities, rec.Amenities) {
			return nil
		}
		return fmt.Errorf("%w: %s must keep location %q, price_per_night %v and amenities %v",
			ErrNotACandidate, h.Name, h.Location, h.PricePerNight, h.Amenities)
	}
	return fmt.Errorf("%w: hotel %q", ErrNotACandidate, rec.Name)
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

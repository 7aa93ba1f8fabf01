package capability

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"travel-assistant/internal/model"
)

type flightRoute struct {
	match   string
	flights []model.FlightRecord
}

type hotelCity struct {
	match  string
	hotels []model.HotelRecord
}

// Routes are checked in order; the first whose key appears in the
// lower-cased destination wins.
var flightRoutes = []flightRoute{
	{
		match: "sylhet",
		flights: []model.FlightRecord{
			{Airline: "Biman Bangladesh", DepartureTime: "08:00", ArrivalTime: "08:45", Price: 45, Direct: true},
			{Airline: "US-Bangla", DepartureTime: "14:30", ArrivalTime: "15:15", Price: 50, Direct: true},
		},
	},
	{
		match: "bangkok",
		flights: []model.FlightRecord{
			{Airline: "Thai Airways", DepartureTime: "11:00", ArrivalTime: "14:30", Price: 350, Direct: true},
			{Airline: "Biman Bangladesh", DepartureTime: "10:00", ArrivalTime: "13:30", Price: 280, Direct: true},
		},
	},
}

var genericFlights = []model.FlightRecord{
	{Airline: "Global Air", DepartureTime: "09:00", ArrivalTime: "12:00", Price: 150, Direct: false},
	{Airline: "Eco Fly", DepartureTime: "18:00", ArrivalTime: "21:00", Price: 120, Direct: true},
}

var hotelCities = []hotelCity{
	{
		match: "paris",
		hotels: []model.HotelRecord{
			{Name: "Hotel Eiffel Paris", Location: "Central Paris", PricePerNight: 220, Amenities: []string{"WiFi", "Pool"}},
			{Name: "Seine River View", Location: "Riverside", PricePerNight: 180, Amenities: []string{"WiFi", "Parking"}},
		},
	},
	{
		match: "sylhet",
		hotels: []model.HotelRecord{
			{Name: "Grand Sylhet Hotel", Location: "Airport Road", PricePerNight: 90, Amenities: []string{"Pool", "WiFi", "Buffet"}},
			{Name: "Rose View Hotel", Location: "Shahjalal Upashahar", PricePerNight: 70, Amenities: []string{"Gym", "Breakfast"}},
		},
	},
	{
		match: "dhaka",
		hotels: []model.HotelRecord{
			{Name: "InterContinental Dhaka", Location: "Minto Road", PricePerNight: 150, Amenities: []string{"Luxury Pool", "Spa"}},
			{Name: "Pan Pacific Sonargaon", Location: "Karwan Bazar", PricePerNight: 130, Amenities: []string{"Gym", "Bar"}},
		},
	},
}

func normalizeLocation(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// lookupFlights returns a fresh copy of the catalogue entry for destination.
func lookupFlights(destination string) []model.FlightRecord {
	key := normalizeLocation(destination)
	src := genericFlights
	for _, route := range flightRoutes {
		if strings.Contains(key, route.match) {
			src = route.flights
			break
		}
	}
	return append([]model.FlightRecord(nil), src...)
}

// lookupHotels returns a fresh copy of the catalogue entry for city, or a
// synthetic pair named after the city when it is not catalogued.
func lookupHotels(city string) []model.HotelRecord {
	key := normalizeLocation(city)
	for _, c := range hotelCities {
		if strings.Contains(key, c.match) {
			return cloneHotels(c.hotels)
		}
	}

	title := cases.Title(language.Und).String(strings.TrimSpace(city))
	return []model.HotelRecord{
		{Name: title + " City Center Hotel", Location: "Downtown", PricePerNight: 100, Amenities: []string{"WiFi", "Restaurant"}},
		{Name: "The " + title + " Inn", Location: "Near Airport", PricePerNight: 80, Amenities: []string{"Parking", "Breakfast"}},
	}
}

func cloneHotels(src []model.HotelRecord) []model.HotelRecord {
	out := make([]model.HotelRecord, len(src))
	for i, h := range src {
		h.Amenities = append([]string(nil), h.Amenities...)
		out[i] = h
	}
	return out
}

// filterByMaxPrice keeps hotels with price_per_night <= maxPrice. A zero
// maxPrice means no filter.
func filterByMaxPrice(hotels []model.HotelRecord, maxPrice float64) []model.HotelRecord {
	if maxPrice == 0 {
		return hotels
	}
	out := make([]model.HotelRecord, 0, len(hotels))
	for _, h := range hotels {
		if h.PricePerNight <= maxPrice {
			out = append(out, h)
		}
	}
	return out
}

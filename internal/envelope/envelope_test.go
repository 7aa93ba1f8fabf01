package envelope

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/model"
)

func TestBuild_ExplicitTag(t *testing.T) {
	flight := model.FlightRecommendation{Airline: "Thai Airways", Price: 350}
	hotel := model.HotelRecommendation{Name: "Rose View Hotel", Amenities: []string{"Gym"}}
	plan := model.TravelPlan{Destination: "Paris", DurationDays: 5}

	tests := []struct {
		name   string
		result model.Result
		want   model.ResponseType
	}{
		{"flight", model.NewFlightResult(flight), model.ResponseFlight},
		{"hotel", model.NewHotelResult(hotel), model.ResponseHotel},
		{"plan", model.NewPlanResult(plan), model.ResponseTravelPlan},
		{"general", model.NewGeneralResult("hello"), model.ResponseGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Build(tt.result, nil)
			assert.True(t, env.Success)
			assert.Equal(t, tt.want, env.ResponseType)
			assert.Equal(t, MessageSuccess, env.Message)
		})
	}
}

func TestBuild_TagIsStable(t *testing.T) {
	res := model.NewHotelResult(model.HotelRecommendation{Name: "Grand Sylhet Hotel", Amenities: []string{"Pool"}})
	first := Build(res, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.ResponseType, Build(res, nil).ResponseType)
	}
}

func TestBuild_ShapeFallbackPriority(t *testing.T) {
	flight := &model.FlightRecommendation{Airline: "Eco Fly"}
	hotel := &model.HotelRecommendation{Name: "Inn"}
	plan := &model.TravelPlan{Destination: "Paris"}

	tests := []struct {
		name   string
		result model.Result
		want   model.ResponseType
	}{
		{"all set", model.Result{Flight: flight, Hotel: hotel, Plan: plan}, model.ResponseFlight},
		{"hotel and plan", model.Result{Hotel: hotel, Plan: plan}, model.ResponseHotel},
		{"plan only", model.Result{Plan: plan}, model.ResponseTravelPlan},
		{"nothing", model.Result{Text: "hi"}, model.ResponseGeneral},
		{"tag without payload", model.Result{Type: model.ResponseHotel, Plan: plan}, model.ResponseTravelPlan},
		{"unknown tag", model.Result{Type: "weather", Flight: flight}, model.ResponseFlight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Build(tt.result, nil)
			assert.True(t, env.Success)
			assert.Equal(t, tt.want, env.ResponseType)
		})
	}
}

func TestInferTypeFromMap(t *testing.T) {
	tests := []struct {
		name string
		data map[string]interface{}
		want model.ResponseType
	}{
		{"flight beats all", map[string]interface{}{"airline": "x", "name": "y", "amenities": []string{}, "destination": "z"}, model.ResponseFlight},
		{"hotel beats plan", map[string]interface{}{"name": "y", "amenities": []string{}, "destination": "z"}, model.ResponseHotel},
		{"name alone is not a hotel", map[string]interface{}{"name": "y", "destination": "z"}, model.ResponseTravelPlan},
		{"plan", map[string]interface{}{"destination": "z"}, model.ResponseTravelPlan},
		{"general", map[string]interface{}{"answer": "42"}, model.ResponseGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferTypeFromMap(tt.data))
			assert.Equal(t, tt.want, BuildRaw(tt.data).ResponseType)
		})
	}
	assert.Equal(t, model.ResponseGeneral, BuildRaw("plain text").ResponseType)
}

func TestBuild_Error(t *testing.T) {
	partial := model.NewHotelResult(model.HotelRecommendation{Name: "half"})
	env := Build(partial, errors.New("hotel_recommendation: output does not match schema"))

	assert.False(t, env.Success)
	assert.Equal(t, model.ResponseError, env.ResponseType)
	assert.Equal(t, "hotel_recommendation: output does not match schema", env.Data)
	assert.Equal(t, MessageError, env.Message)
}

func TestEnvelope_JSONShape(t *testing.T) {
	env := Build(model.NewPlanResult(model.TravelPlan{
		Destination:  "Paris",
		DurationDays: 5,
		Budget:       2000,
		Activities:   []string{"Louvre"},
		Notes:        "USD",
	}), nil)

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, "travel_plan", decoded["response_type"])
	assert.Equal(t, "Success", decoded["message"])
	data := decoded["data"].(map[string]interface{})
	assert.Equal(t, "Paris", data["destination"])
	assert.Equal(t, float64(5), data["duration_days"])
}

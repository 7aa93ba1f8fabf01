package handler

// Log prefixes
const (
	LogPrefixFlight  = "internal.handler.Flight"
	LogPrefixHotel   = "internal.handler.Hotel"
	LogPrefixPlanner = "internal.handler.Planner"
)

// Task names, used in logs and validation errors.
const (
	TaskFlightParams         = "flight_search_params"
	TaskFlightRecommendation = "flight_recommendation"
	TaskHotelParams          = "hotel_search_params"
	TaskHotelRecommendation  = "hotel_recommendation"
	TaskPlanContext          = "plan_context"
	TaskTravelPlan           = "travel_plan"
)

const (
	promptFlightParams = `You are a flight booking assistant. Extract the search parameters for the %s tool from the traveller's request.
%s
Use the city names exactly as the traveller wrote them. When the origin or date is not stated, use an empty string.`

	promptFlightSelect = `You are a flight booking specialist. Choose exactly one flight from the available options that best fits the traveller's request, copy its airline, departure_time, arrival_time, price and direct flag unchanged (direct becomes direct_flight), and explain the choice in recommendation_reason.`

	promptHotelParams = `You are a hotel booking assistant. Extract the search parameters for the %s tool from the traveller's request.
%s
Set max_price only when the traveller states a nightly price limit, otherwise null. Dates the traveller did not give are null.`

	promptHotelSelect = `You are a hotel booking specialist. Choose exactly one hotel from the available options that best fits the traveller's request, copy its name, location, price_per_night and amenities unchanged, and explain the choice in recommendation_reason.`

	promptPlanContext = `You are a travel planner. Identify the trip destination in the traveller's request. When you know the destination's approximate coordinates, give them as lat and lon; otherwise use null for both.`

	promptTravelPlan = `You are an expert travel planner. Create a day-by-day friendly travel plan for the traveller's request.
Give duration_days as a whole number of days and budget as a total estimate. Quote the budget in the currency the traveller asked for when they named one, and state that currency in notes.
List activities in the order they happen. Mention the weather in notes when it is provided.`

	promptCandidates = `Traveller request: %s

Available options (JSON):
%s`

	promptPlanInput = `Traveller request: %s

Weather: %s`

	weatherNotChecked = "not checked"
)

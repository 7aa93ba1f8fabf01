package model

// ResponseType tags the payload of an Envelope.
type ResponseType string

const (
	ResponseFlight     ResponseType = "flight"
	ResponseHotel      ResponseType = "hotel"
	ResponseTravelPlan ResponseType = "travel_plan"
	ResponseGeneral    ResponseType = "general"
	ResponseError      ResponseType = "error"
)

// Result is the tagged union every handler returns. Exactly one payload
// field matching Type is set.
type Result struct {
	Type   ResponseType
	Flight *FlightRecommendation
	Hotel  *HotelRecommendation
	Plan   *TravelPlan
	Text   string
}

func NewFlightResult(rec FlightRecommendation) Result {
	return Result{Type: ResponseFlight, Flight: &rec}
}

func NewHotelResult(rec HotelRecommendation) Result {
	return Result{Type: ResponseHotel, Hotel: &rec}
}

func NewPlanResult(plan TravelPlan) Result {
	return Result{Type: ResponseTravelPlan, Plan: &plan}
}

func NewGeneralResult(text string) Result {
	return Result{Type: ResponseGeneral, Text: text}
}

// Envelope is the JSON body returned by POST /query.
type Envelope struct {
	Success      bool         `json:"success"`
	ResponseType ResponseType `json:"response_type"`
	Data         interface{}  `json:"data"`
	Message      string       `json:"message,omitempty"`
}

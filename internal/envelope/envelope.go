// Package envelope wraps handler output into the tagged JSON envelope
// returned to callers.
package envelope

import "travel-assistant/internal/model"

const (
	MessageSuccess = "Success"
	MessageError   = "An error occurred"
)

// Build wraps a handler result, or its failure, in an Envelope. The tag is
// taken from result.Type; a result whose tag does not match its payload is
// tagged by shape instead.
func Build(result model.Result, err error) model.Envelope {
	if err != nil {
		return Error(err)
	}

	switch result.Type {
	case model.ResponseFlight:
		if result.Flight != nil {
			return success(model.ResponseFlight, result.Flight)
		}
	case model.ResponseHotel:
		if result.Hotel != nil {
			return success(model.ResponseHotel, result.Hotel)
		}
	case model.ResponseTravelPlan:
		if result.Plan != nil {
			return success(model.ResponseTravelPlan, result.Plan)
		}
	case model.ResponseGeneral:
		return success(model.ResponseGeneral, result.Text)
	}

	return fromShape(result)
}

// Error builds the failure envelope. data carries the failure text only.
func Error(err error) model.Envelope {
	text := MessageError
	if err != nil {
		text = err.Error()
	}
	return model.Envelope{
		Success:      false,
		ResponseType: model.ResponseError,
		Data:         text,
		Message:      MessageError,
	}
}

// BuildRaw tags an untyped payload by shape. Maps are inspected for the
// distinguishing keys; anything else is general text.
func BuildRaw(data interface{}) model.Envelope {
	if m, ok := data.(map[string]interface{}); ok {
		return success(InferTypeFromMap(m), m)
	}
	return success(model.ResponseGeneral, data)
}

// InferType tags a result by which payload is set, checking flight, then
// hotel, then plan.
func InferType(result model.Result) model.ResponseType {
	switch {
	case result.Flight != nil:
		return model.ResponseFlight
	case result.Hotel != nil:
		return model.ResponseHotel
	case result.Plan != nil:
		return model.ResponseTravelPlan
	default:
		return model.ResponseGeneral
	}
}

// InferTypeFromMap applies the same priority to a raw mapping: airline means
// flight, name with amenities means hotel, destination means travel plan.
func InferTypeFromMap(data map[string]interface{}) model.ResponseType {
	if _, ok := data["airline"]; ok {
		return model.ResponseFlight
	}
	_, hasName := data["name"]
	_, hasAmenities := data["amenities"]
	if hasName && hasAmenities {
		return model.ResponseHotel
	}
	if _, ok := data["destination"]; ok {
		return model.ResponseTravelPlan
	}
	return model.ResponseGeneral
}

func fromShape(result model.Result) model.Envelope {
	switch t := InferType(result); t {
	case model.ResponseFlight:
		return success(t, result.Flight)
	case model.ResponseHotel:
		return success(t, result.Hotel)
	case model.ResponseTravelPlan:
		return success(t, result.Plan)
	default:
		return success(t, result.Text)
	}
}

func success(t model.ResponseType, data interface{}) model.Envelope {
	return model.Envelope{
		Success:      true,
		ResponseType: t,
		Data:         data,
		Message:      MessageSuccess,
	}
}

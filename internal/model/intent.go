package model

// Intent is the classification the router assigns to a query.
type Intent string

const (
	IntentPlan   Intent = "plan"
	IntentFlight Intent = "flight"
	IntentHotel  Intent = "hotel"
)

// Intents lists every routable intent.
var Intents = []Intent{IntentPlan, IntentFlight, IntentHotel}

// Valid reports whether i is one of Intents.
func (i Intent) Valid() bool {
	switch i {
	case IntentPlan, IntentFlight, IntentHotel:
		return true
	}
	return false
}

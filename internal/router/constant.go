package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
	LogPrefixRoute    = "internal.router.Route"
)

// Router prompts
const (
	PromptRouterSystem = `You are the front desk of a travel agency. Classify the traveller's request into exactly one intent.

Intents:
1. plan: trip planning, itineraries, budgets, what to do, general travel questions. This is the default.
2. flight: the traveller explicitly asks to FIND or BOOK a flight.
3. hotel: the traveller explicitly asks to FIND or BOOK a hotel or other accommodation.

If the request mixes planning with a search, or you are unsure, choose plan.
Give confidence from 0 to 100 and a short reasoning.`
)

// Router configuration
const (
	TaskClassify = "classify_intent"

	// DefaultMinConfidence is the confidence a flight or hotel
	// classification needs before the query leaves the planner.
	DefaultMinConfidence = 50

	tracerName = "travel-assistant/internal/router"
)

// Error messages
const (
	ErrMsgClassifyFailed = "intent classification failed"
	ErrMsgHandlerFailed  = "handler failed"
)

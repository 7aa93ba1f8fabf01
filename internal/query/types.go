package query

// AnswerInput is a single free-form travel request.
type AnswerInput struct {
	Query string
}

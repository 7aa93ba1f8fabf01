package http

import (
	"travel-assistant/internal/query"
)

// queryReq is the POST /query body. An empty query is accepted here and
// answered with an error envelope by the use case.
type queryReq struct {
	Query string `json:"query" example:"Plan a 5-day trip to Paris"`
}

func (r queryReq) toInput() query.AnswerInput {
	return query.AnswerInput{Query: r.Query}
}

// queryResp documents the envelope for swagger; the handler writes
// model.Envelope directly.
type queryResp struct {
	Success      bool        `json:"success" example:"true"`
	ResponseType string      `json:"response_type" example:"travel_plan" enums:"flight,hotel,travel_plan,general,error"`
	Data         interface{} `json:"data"`
	Message      string      `json:"message,omitempty" example:"Success"`
}

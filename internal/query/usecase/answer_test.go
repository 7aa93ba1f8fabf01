package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"travel-assistant/internal/handler"
	"travel-assistant/internal/model"
	"travel-assistant/internal/query"
	"travel-assistant/internal/reasoning"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/llmprovider"
)

type mockRouter struct {
	result model.Result
	err    error
	panic  any
	block  bool
	calls  int
}

func (m *mockRouter) Classify(ctx context.Context, q string) (router.RouterOutput, error) {
	return router.RouterOutput{}, nil
}

func (m *mockRouter) Route(ctx context.Context, q string) (model.Result, error) {
	m.calls++
	if m.panic != nil {
		panic(m.panic)
	}
	if m.block {
		<-ctx.Done()
		return model.Result{}, ctx.Err()
	}
	return m.result, m.err
}

func TestAnswer_Success(t *testing.T) {
	r := &mockRouter{result: model.NewHotelResult(model.HotelRecommendation{Name: "Rose View Hotel", Amenities: []string{"Gym"}})}
	uc := New(r, &mockLogger{}, nil, time.Second)

	env := uc.Answer(context.Background(), query.AnswerInput{Query: "hotel in Sylhet"})

	if !env.Success || env.ResponseType != model.ResponseHotel || env.Message != "Success" {
		t.Fatalf("unexpected envelope %+v", env)
	}
	if r.calls != 1 {
		t.Errorf("expected one Route call, got %d", r.calls)
	}
}

func TestAnswer_EmptyQuery(t *testing.T) {
	r := &mockRouter{}
	uc := New(r, &mockLogger{}, nil, time.Second)

	env := uc.Answer(context.Background(), query.AnswerInput{Query: "   "})

	if env.Success || env.ResponseType != model.ResponseError {
		t.Fatalf("expected error envelope, got %+v", env)
	}
	if env.Data != query.ErrEmptyQuery.Error() {
		t.Errorf("unexpected data %v", env.Data)
	}
	if r.calls != 0 {
		t.Errorf("router must not be called for an empty query")
	}
}

func TestAnswer_RouterError(t *testing.T) {
	uc := New(&mockRouter{err: errors.New("classification failed")}, &mockLogger{}, nil, time.Second)

	env := uc.Answer(context.Background(), query.AnswerInput{Query: "anything"})

	if env.Success || env.ResponseType != model.ResponseError || env.Message != "An error occurred" {
		t.Fatalf("unexpected envelope %+v", env)
	}
	if env.Data != "classification failed" {
		t.Errorf("unexpected data %v", env.Data)
	}
}

func TestAnswer_Timeout(t *testing.T) {
	uc := New(&mockRouter{block: true}, &mockLogger{}, nil, 20*time.Millisecond)

	env := uc.Answer(context.Background(), query.AnswerInput{Query: "slow"})

	if env.Success || env.ResponseType != model.ResponseError {
		t.Fatalf("expected error envelope, got %+v", env)
	}
	data, _ := env.Data.(string)
	if !strings.Contains(data, query.ErrTimeout.Error()) {
		t.Errorf("expected timeout message, got %q", data)
	}
}

func TestAnswer_Panic(t *testing.T) {
	uc := New(&mockRouter{panic: "nil map"}, &mockLogger{}, nil, time.Second)

	env := uc.Answer(context.Background(), query.AnswerInput{Query: "boom"})

	if env.Success || env.ResponseType != model.ResponseError {
		t.Fatalf("expected error envelope, got %+v", env)
	}
	data, _ := env.Data.(string)
	if data != query.ErrPanic.Error() || strings.Contains(data, "nil map") {
		t.Errorf("expected the generic panic message, got %q", data)
	}
}

func TestAnswer_ErrorDataHidesInternalPrefixes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "root cause",
			err:  fmt.Errorf("internal.router.Classify: intent classification failed: %w", errors.New("upstream closed the connection")),
			want: "upstream closed the connection",
		},
		{
			name: "no candidates",
			err:  fmt.Errorf("internal.handler.Hotel: %w", handler.ErrNoCandidates),
			want: handler.ErrNoCandidates.Error(),
		},
		{
			name: "not a candidate",
			err:  fmt.Errorf("internal.handler.Flight: %w: airline %q", handler.ErrNotACandidate, "Emirates"),
			want: handler.ErrNotACandidate.Error(),
		},
		{
			name: "all providers failed",
			err:  fmt.Errorf("internal.reasoning.Generate: plan: %w: gemini: 503", llmprovider.ErrAllProvidersFailed),
			want: llmprovider.ErrAllProvidersFailed.Error(),
		},
		{
			name: "schema violation keeps the violations",
			err: fmt.Errorf("internal.handler.Hotel: %w", &reasoning.ValidationError{
				Task:       "hotel_recommendation",
				Violations: []string{"(root): recommendation_reason is required"},
			}),
			want: "hotel_recommendation: output does not match schema: (root): recommendation_reason is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(&mockRouter{err: tt.err}, &mockLogger{}, nil, time.Second)

			env := uc.Answer(context.Background(), query.AnswerInput{Query: "anything"})

			if env.Success || env.ResponseType != model.ResponseError {
				t.Fatalf("expected error envelope, got %+v", env)
			}
			if env.Data != tt.want {
				t.Errorf("expected %q, got %v", tt.want, env.Data)
			}
		})
	}
}

func TestNew_DefaultTimeout(t *testing.T) {
	uc := New(&mockRouter{}, &mockLogger{}, nil, 0)
	if uc.timeout != DefaultTimeout {
		t.Errorf("expected %s, got %s", DefaultTimeout, uc.timeout)
	}
}

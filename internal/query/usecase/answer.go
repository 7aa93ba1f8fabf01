package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-assistant/internal/envelope"
	"travel-assistant/internal/handler"
	"travel-assistant/internal/model"
	"travel-assistant/internal/query"
	"travel-assistant/internal/reasoning"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/llmprovider"
)

// callerSentinels are reported to callers by their own text, without the
// wrapping context that only the logs need.
var callerSentinels = []error{
	query.ErrPanic,
	handler.ErrNoCandidates,
	handler.ErrNotACandidate,
	router.ErrUnknownIntent,
	llmprovider.ErrAllProvidersFailed,
	llmprovider.ErrNoProvidersConfigured,
}

// Answer routes the query under the configured deadline and wraps the
// outcome in an envelope.
func (uc *implUseCase) Answer(ctx context.Context, input query.AnswerInput) (env model.Envelope) {
	start := time.Now()
	defer func() {
		uc.metrics.ObserveQuery(string(env.ResponseType), time.Since(start))
	}()

	q := strings.TrimSpace(input.Query)
	if q == "" {
		return envelope.Error(query.ErrEmptyQuery)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	result, err := uc.route(ctx, q)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s: %v", query.ErrTimeout, uc.timeout, err)
		}
		uc.l.Errorf(ctx, "%s: %v", logPrefixAnswer, err)
		return envelope.Error(uc.callerError(err))
	}

	env = envelope.Build(result, nil)
	uc.l.Infof(ctx, "%s: answered as %s in %s", logPrefixAnswer, env.ResponseType, time.Since(start))
	return env
}

// route converts a panic anywhere in the pipeline into an error.
func (uc *implUseCase) route(ctx context.Context, q string) (result model.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: recovered panic: %v", logPrefixAnswer, r)
			err = fmt.Errorf("%w: %v", query.ErrPanic, r)
		}
	}()

	return uc.router.Route(ctx, q)
}

// callerError reduces a pipeline error to what an API caller should see.
// Package log prefixes and panic values stay in the logs.
func (uc *implUseCase) callerError(err error) error {
	if errors.Is(err, query.ErrTimeout) {
		return fmt.Errorf("%w after %s", query.ErrTimeout, uc.timeout)
	}

	var vErr *reasoning.ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}

	for _, sentinel := range callerSentinels {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

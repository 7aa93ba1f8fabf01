package router

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"travel-assistant/internal/model"
	"travel-assistant/internal/reasoning"
)

// Classify determines the intent of a query. Failures are returned as-is;
// there is no fallback intent.
func (r *SemanticRouter) Classify(ctx context.Context, query string) (RouterOutput, error) {
	var output RouterOutput
	err := r.reasoner.Generate(ctx, reasoning.Task{
		Name:         TaskClassify,
		Instructions: PromptRouterSystem,
		Input:        query,
		Schema:       routerOutputSchema(),
	}, &output)
	if err != nil {
		return RouterOutput{}, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgClassifyFailed, err)
	}

	r.l.Infof(ctx, "%s: Classified as %s (confidence: %d%%)", LogPrefixClassify, output.Intent, output.Confidence)
	return output, nil
}

// Route classifies the query and hands it to exactly one handler. The
// handler's result is returned unmodified.
func (r *SemanticRouter) Route(ctx context.Context, query string) (model.Result, error) {
	ctx, span := r.tracer.Start(ctx, "router.Route")
	defer span.End()

	output, err := r.Classify(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, ErrMsgClassifyFailed)
		return model.Result{}, err
	}

	intent := r.resolve(ctx, output)
	r.metrics.IncIntent(string(intent))
	span.SetAttributes(
		attribute.String("router.intent", string(intent)),
		attribute.Int("router.confidence", output.Confidence),
	)

	h, ok := r.handlers[intent]
	if !ok {
		err := fmt.Errorf("%s: %w: %q", LogPrefixRoute, ErrUnknownIntent, intent)
		span.RecordError(err)
		return model.Result{}, err
	}

	result, err := h.Handle(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, ErrMsgHandlerFailed)
		return model.Result{}, err
	}

	return result, nil
}

// resolve keeps low-confidence specialist classifications with the planner.
func (r *SemanticRouter) resolve(ctx context.Context, output RouterOutput) model.Intent {
	if output.Intent == model.IntentPlan || !output.Intent.Valid() {
		return output.Intent
	}
	if output.Confidence < r.cfg.MinConfidence {
		r.l.Infof(ctx, "%s: %s confidence %d%% below %d%%, planning instead", LogPrefixRoute, output.Intent, output.Confidence, r.cfg.MinConfidence)
		return model.IntentPlan
	}
	return output.Intent
}

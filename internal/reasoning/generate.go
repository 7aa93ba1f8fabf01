package reasoning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"travel-assistant/pkg/llmprovider"
)

// Generate asks the model for JSON, checks it against task.Schema, the
// validate tags of out and task.Check, and decodes it. A rejected answer is
// sent back to the model with the violations, up to Config.MaxAttempts times.
func (g *Generator) Generate(ctx context.Context, task Task, out interface{}) error {
	ctx, span := g.tracer.Start(ctx, "reasoning.Generate", trace.WithAttributes(
		attribute.String("reasoning.task", task.Name),
	))
	defer span.End()

	err := g.generate(ctx, task, out, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (g *Generator) generate(ctx context.Context, task Task, out interface{}, span trace.Span) error {
	schemaJSON, err := json.MarshalIndent(task.Schema, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %s: marshal schema: %w", LogPrefixGenerate, task.Name, err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return fmt.Errorf("%s: %s: compile schema: %w", LogPrefixGenerate, task.Name, err)
	}

	req := &llmprovider.Request{
		SystemInstruction: task.Instructions + fmt.Sprintf(promptSchemaSuffix, schemaJSON),
		Messages:          []llmprovider.Message{{Role: llmprovider.RoleUser, Content: task.Input}},
		Temperature:       g.cfg.Temperature,
		MaxTokens:         g.cfg.MaxTokens,
		JSONMode:          true,
	}

	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		span.SetAttributes(attribute.Int("reasoning.attempts", attempt))

		resp, err := g.llm.GenerateContent(ctx, req)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", LogPrefixGenerate, task.Name, err)
		}

		text := stripCodeFence(resp.Text())
		lastErr = g.accept(task, schema, text, out)
		if lastErr == nil {
			g.l.Debugf(ctx, "%s: %s accepted on attempt %d", LogPrefixGenerate, task.Name, attempt)
			return nil
		}

		g.l.Warnf(ctx, "%s: %s rejected on attempt %d: %v", LogPrefixGenerate, task.Name, attempt, lastErr)
		req.Messages = append(req.Messages,
			llmprovider.Message{Role: llmprovider.RoleAssistant, Content: text},
			llmprovider.Message{Role: llmprovider.RoleUser, Content: fmt.Sprintf(promptRepair, lastErr)},
		)
	}

	return lastErr
}

// accept validates text and decodes it into out.
func (g *Generator) accept(task Task, schema *gojsonschema.Schema, text string, out interface{}) error {
	if text == "" {
		return fmt.Errorf("%s: %w", task.Name, ErrEmptyResponse)
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(text))
	if err != nil {
		return &ValidationError{Task: task.Name, Violations: []string{"invalid JSON: " + err.Error()}}
	}
	if !result.Valid() {
		violations := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			violations[i] = desc.String()
		}
		return &ValidationError{Task: task.Name, Violations: violations}
	}

	dec := json.NewDecoder(strings.NewReader(text))
	if isStructPtr(out) {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(out); err != nil {
		return &ValidationError{Task: task.Name, Violations: []string{"decode: " + err.Error()}}
	}

	if isStructPtr(out) {
		if err := g.validate.Struct(out); err != nil {
			return &ValidationError{Task: task.Name, Violations: describeValidation(err)}
		}
	}

	if task.Check != nil {
		if err := task.Check(out); err != nil {
			return &ValidationError{Task: task.Name, Violations: []string{err.Error()}, Cause: err}
		}
	}
	return nil
}

func describeValidation(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	out := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		if fe.Param() != "" {
			out[i] = fmt.Sprintf("%s: must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			out[i] = fmt.Sprintf("%s: must satisfy %s", fe.Namespace(), fe.Tag())
		}
	}
	return out
}

func isStructPtr(v interface{}) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Struct
}

// stripCodeFence removes a surrounding ```json ... ``` block if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	return s
}

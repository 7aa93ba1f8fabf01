package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/metrics"
	"travel-assistant/internal/reasoning"
	"travel-assistant/pkg/log"
)

// specialist pairs one capability with the reasoner.
type specialist struct {
	reasoner reasoning.Reasoner
	tool     agent.Tool
	l        log.Logger
	metrics  *metrics.Metrics
}

// search derives the tool parameters from the query and calls the tool once.
func (s specialist) search(ctx context.Context, logPrefix, taskName, prompt, query string) (interface{}, error) {
	var params map[string]interface{}
	err := s.reasoner.Generate(ctx, reasoning.Task{
		Name:         taskName,
		Instructions: fmt.Sprintf(prompt, s.tool.Name(), s.tool.Description()),
		Input:        query,
		Schema:       s.tool.Parameters(),
	}, &params)
	if err != nil {
		return nil, fmt.Errorf("%s: extract parameters: %w", logPrefix, err)
	}

	s.metrics.IncCapabilityCall(s.tool.Name())
	records, err := s.tool.Execute(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", logPrefix, s.tool.Name(), err)
	}

	s.l.Debugf(ctx, "%s: %s called with %v", logPrefix, s.tool.Name(), params)
	return records, nil
}

func candidatesInput(query string, records interface{}) (string, error) {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(promptCandidates, query, raw), nil
}

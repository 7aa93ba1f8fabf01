package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-assistant/pkg/log"
)

const logPrefixManager = "pkg.llmprovider.Manager"

// Manager is the single LLMClient the reasoning layer sees. It walks the
// configured providers in priority order, retrying each one before falling
// back to the next.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config mirrors the llm section of the service config.
type Config struct {
	FallbackEnabled bool
	// RetryAttempts is the number of calls per provider, at least 1.
	RetryAttempts int
	// RetryDelay grows linearly with the attempt number.
	RetryDelay time.Duration
	// MaxTotalTimeout bounds the whole chain, retries included.
	MaxTotalTimeout time.Duration
}

func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the provider chain in priority order.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent returns the first successful reply in the chain. When every
// provider fails the error wraps ErrAllProvidersFailed and carries the last
// provider's error.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	tried := 0

	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: gave up after %d provider(s): %w", logPrefixManager, tried, err)
		}
		tried++

		start := time.Now()
		resp, attempts, err := m.callProvider(ctx, provider, req)
		if err == nil {
			m.logReply(ctx, provider, req, resp, attempts, time.Since(start))
			return resp, nil
		}

		m.logger.Warnf(ctx, "%s: provider=%s model=%s attempts=%d json_mode=%t failed: %v",
			logPrefixManager, provider.Name(), provider.Model(), attempts, req.JSONMode, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// callProvider retries one provider. A rate-limited provider is not retried;
// the chain moves straight to the next one.
func (m *Manager) callProvider(ctx context.Context, provider Provider, req *Request) (*Response, int, error) {
	var lastErr error
	attempts := 0

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, attempts, ctx.Err()
			}
		}

		attempts++
		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, attempts, nil
		}
		lastErr = err

		if errors.Is(err, ErrProviderRateLimited) || ctx.Err() != nil {
			break
		}
	}

	return nil, attempts, lastErr
}

func (m *Manager) logReply(ctx context.Context, provider Provider, req *Request, resp *Response, attempts int, took time.Duration) {
	in, out := 0, 0
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "%s: provider=%s model=%s attempts=%d json_mode=%t messages=%d tokens_in=%d tokens_out=%d took=%s",
		logPrefixManager, provider.Name(), provider.Model(), attempts, req.JSONMode, len(req.Messages), in, out, took)
}

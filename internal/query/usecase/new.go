package usecase

import (
	"time"

	"travel-assistant/internal/metrics"
	"travel-assistant/internal/query"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/log"
)

const (
	DefaultTimeout = 60 * time.Second

	logPrefixAnswer = "internal.query.usecase.Answer"
)

// implUseCase is the private implementation of query.UseCase.
type implUseCase struct {
	router  router.Router
	l       log.Logger
	metrics *metrics.Metrics
	timeout time.Duration
}

var _ query.UseCase = (*implUseCase)(nil)

// New creates a new query UseCase. A non-positive timeout uses DefaultTimeout.
func New(r router.Router, l log.Logger, m *metrics.Metrics, timeout time.Duration) *implUseCase {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &implUseCase{
		router:  r,
		l:       l,
		metrics: m,
		timeout: timeout,
	}
}

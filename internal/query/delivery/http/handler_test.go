package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"travel-assistant/config"
	"travel-assistant/internal/middleware"
	"travel-assistant/internal/model"
	"travel-assistant/internal/query"
	"travel-assistant/pkg/log"
)

type stubUseCase struct {
	env   model.Envelope
	input query.AnswerInput
	calls int
}

func (s *stubUseCase) Answer(ctx context.Context, input query.AnswerInput) model.Envelope {
	s.calls++
	s.input = input
	return s.env
}

func TestQuery_ReturnsEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := &stubUseCase{env: model.Envelope{
		Success:      true,
		ResponseType: model.ResponseGeneral,
		Data:         "hello",
		Message:      "Success",
	}}
	h := New(log.NewNop(), uc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query":"hi there"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Query(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.input.Query != "hi there" {
		t.Errorf("expected query to reach the use case, got %q", uc.input.Query)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["success"] != true || body["response_type"] != "general" || body["data"] != "hello" || body["message"] != "Success" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestQuery_ErrorEnvelopeKeeps200(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := &stubUseCase{env: model.Envelope{
		Success:      false,
		ResponseType: model.ResponseError,
		Data:         "boom",
		Message:      "An error occurred",
	}}
	h := New(log.NewNop(), uc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query":""}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Query(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"response_type":"error"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestQuery_MalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := &stubUseCase{}
	h := New(log.NewNop(), uc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query":`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Query(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if uc.calls != 0 {
		t.Errorf("use case must not run on a malformed body")
	}
}

func TestRegisterRoutes_RateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), config.RateLimitConfig{
		Enabled:        true,
		RequestsPerMin: 1,
		Burst:          1,
		MaxTrackedIPs:  10,
	})
	r := gin.New()
	RegisterRoutes(r, New(log.NewNop(), &stubUseCase{env: model.Envelope{Success: true, ResponseType: model.ResponseGeneral}}), mw)

	send := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := send(); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
}

package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/cantina-pos-backend/pkg/config"
	"github.com/angelmondragon/cantina-pos-backend/pkg/logger"
	"github.com/angelmondragon/cantina-pos-backend/pkg/types"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(context.Context) error { return s.err }

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "dev"}}
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestHealthLive(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health/live", nil)

	HealthLive(testConfig())(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("X-Cantina-Env"); got != "dev" {
		t.Fatalf("expected env header, got %q", got)
	}
}

func TestHealthReadyAllUp(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health/ready", nil)

	HealthReady(testConfig(), testLogger(), &stubPinger{}, &stubPinger{})(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestHealthReadyDependencyDown(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health/ready", nil)

	HealthReady(testConfig(), testLogger(), &stubPinger{}, &stubPinger{err: errors.New("refused")})(w, r)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}

	var body types.ErrorEnvelope
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	details, ok := body.Error.Details.(map[string]any)
	if !ok || details["redis"] != "down" || details["database"] != "up" {
		t.Fatalf("unexpected details %v", body.Error.Details)
	}
}

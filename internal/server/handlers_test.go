package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/garalhogames-hue/HlivePlayer16/internal/config"
	"github.com/garalhogames-hue/HlivePlayer16/internal/logger"
	"github.com/garalhogames-hue/HlivePlayer16/internal/mocks"
	"github.com/garalhogames-hue/HlivePlayer16/internal/models"
)

// stubSource counts resolutions and returns a fixed answer
type stubSource struct {
	mu     sync.Mutex
	calls  int
	status *models.StreamStatus
	err    error
}

func (s *stubSource) Resolve(ctx context.Context) (*models.StreamStatus, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.status, nil
}

func (s *stubSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestServer(source StatusSource) *Server {
	return &Server{
		Config:  &config.Config{StreamHost: "cast.example.com", StreamPort: "8000"},
		Source:  source,
		Version: "1.3",
		log:     logger.NewDefault().WithComponent("server"),
	}
}

func onAirStatus() *models.StreamStatus {
	return &models.StreamStatus{
		Announcer:       "DJ Clara",
		Program:         "Evening Drive",
		UniqueListeners: 7,
		State:           models.StateOnline,
		ResolvedAt:      time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC),
	}
}

func TestHandleStatusSuccess(t *testing.T) {
	stub := &stubSource{status: onAirStatus()}
	s := newTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	s.HandleStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}

	var resp models.StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Timestamp != "2025-03-14T15:09:26Z" {
		t.Errorf("timestamp = %q, want 2025-03-14T15:09:26Z", resp.Timestamp)
	}
	if resp.Data.Locutor != "DJ Clara" {
		t.Errorf("locutor = %q, want DJ Clara", resp.Data.Locutor)
	}
	if resp.Data.Programa != "Evening Drive" {
		t.Errorf("programa = %q, want Evening Drive", resp.Data.Programa)
	}
	if resp.Data.Unicos != 7 {
		t.Errorf("unicos = %d, want 7", resp.Data.Unicos)
	}
	if resp.Data.Status != models.StateOnline {
		t.Errorf("status = %q, want %q", resp.Data.Status, models.StateOnline)
	}
}

func TestHandleStatusFailure(t *testing.T) {
	stub := &stubSource{err: errors.New("no usable status from any of 5 endpoints")}
	s := newTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	s.HandleStatus(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	// The player reads failures cross-origin too.
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("success = true, want false")
	}
	if !strings.Contains(resp.Error, "no usable status") {
		t.Errorf("error = %q, want the resolution failure message", resp.Error)
	}
}

func TestHandleStatusPreflight(t *testing.T) {
	stub := &stubSource{err: errors.New("preflight must not resolve")}
	s := newTestServer(stub)

	req := httptest.NewRequest(http.MethodOptions, "/api/status", nil)
	rec := httptest.NewRecorder()
	s.HandleStatus(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, OPTIONS" {
		t.Errorf("Access-Control-Allow-Methods = %q, want GET, OPTIONS", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
		t.Errorf("Access-Control-Allow-Headers = %q, want Content-Type", got)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
	if stub.callCount() != 0 {
		t.Errorf("preflight triggered %d resolutions, want 0", stub.callCount())
	}
}

func TestHandleStatusRejectsOtherMethods(t *testing.T) {
	stub := &stubSource{status: onAirStatus()}
	s := newTestServer(stub)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/status", nil)
		rec := httptest.NewRecorder()
		s.HandleStatus(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s status = %d, want %d", method, rec.Code, http.StatusMethodNotAllowed)
		}
	}
	if stub.callCount() != 0 {
		t.Errorf("rejected methods triggered %d resolutions, want 0", stub.callCount())
	}
}

func TestHandleStatusMockupMode(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}
	canned := `{"announcer":"DJ Garalho","program":"Tarde Animada","unique_listeners":12,"state":"online","resolved_at":"2025-01-15T18:30:00Z"}`
	if err := os.WriteFile(filepath.Join(dataDir, "stream_status.json"), []byte(canned), 0644); err != nil {
		t.Fatalf("failed to write canned status: %v", err)
	}

	stub := &stubSource{err: errors.New("mockup mode must not resolve")}
	s := newTestServer(stub)
	s.MockService = mocks.NewMockService(dir)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	s.HandleStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp models.StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Locutor != "DJ Garalho" {
		t.Errorf("locutor = %q, want the canned DJ Garalho", resp.Data.Locutor)
	}
	if resp.Data.Unicos != 12 {
		t.Errorf("unicos = %d, want 12", resp.Data.Unicos)
	}
	if stub.callCount() != 0 {
		t.Errorf("mockup mode triggered %d live resolutions, want 0", stub.callCount())
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(&stubSource{status: onAirStatus()})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.HandleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var health map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", health["status"])
	}
	if health["version"] != "1.3" {
		t.Errorf("version = %v, want 1.3", health["version"])
	}

	req = httptest.NewRequest(http.MethodPost, "/health", nil)
	rec = httptest.NewRecorder()
	s.HandleHealth(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleRoot(t *testing.T) {
	s := newTestServer(&stubSource{status: onAirStatus()})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.HandleRoot(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "/api/status") {
		t.Error("landing page does not mention /api/status")
	}

	req = httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rec = httptest.NewRecorder()
	s.HandleRoot(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestSetupRoutes(t *testing.T) {
	s := newTestServer(&stubSource{status: onAirStatus()})
	mux := s.SetupRoutes()

	tests := []struct {
		path     string
		wantCode int
	}{
		{"/api/status", http.StatusOK},
		{"/health", http.StatusOK},
		{"/", http.StatusOK},
		{"/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != tt.wantCode {
			t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.wantCode)
		}
	}
}

func TestNewServer(t *testing.T) {
	cfg := &config.Config{
		StreamHost:      "cast.example.com",
		StreamPort:      "8000",
		StatusTimeoutMS: 5000,
	}

	s := NewServer(cfg)
	if s.Source == nil {
		t.Error("Source = nil, want a wired resolver")
	}
	if s.MockService != nil {
		t.Error("MockService set without mockup mode")
	}
	if s.Version == "" {
		t.Error("Version is empty")
	}

	cfg.MockupMode = true
	s = NewServer(cfg)
	if s.MockService == nil {
		t.Error("MockService = nil, want it wired in mockup mode")
	}
}

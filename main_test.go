package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/garalhogames-hue/HlivePlayer16/internal/config"
	"github.com/garalhogames-hue/HlivePlayer16/internal/server"
)

func TestHealthEndpoint(t *testing.T) {
	cfg := &config.Config{
		Port:            "8982",
		StreamHost:      "cast.example.com",
		StreamPort:      "8000",
		StatusTimeoutMS: 5000,
		Environment:     "test",
	}

	srv := server.NewServer(cfg)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	srv.HandleHealth(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusOK)
	}

	if !strings.Contains(rr.Body.String(), "healthy") {
		t.Errorf("handler returned unexpected body: got %v", rr.Body.String())
	}
}

func TestLandingPageThroughRoutes(t *testing.T) {
	cfg := &config.Config{
		Port:            "8982",
		StreamHost:      "cast.example.com",
		StreamPort:      "8000",
		StatusTimeoutMS: 5000,
		Environment:     "test",
	}

	srv := server.NewServer(cfg)
	mux := srv.SetupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("landing page status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "/api/status") {
		t.Errorf("landing page does not mention the status endpoint: %v", rr.Body.String())
	}
}

func TestConfigLoad(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		t.Fatalf("Config load failed: %v", err)
	}
	if cfg.Port == "" {
		t.Error("Port has no value, the default did not apply")
	}
	if cfg.StreamHost == "" {
		t.Error("StreamHost has no value, the default did not apply")
	}
}

package server

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/garalhogames-hue/HlivePlayer16/internal/config"
	"github.com/garalhogames-hue/HlivePlayer16/internal/logger"
	"github.com/garalhogames-hue/HlivePlayer16/internal/mocks"
	"github.com/garalhogames-hue/HlivePlayer16/internal/models"
	"github.com/garalhogames-hue/HlivePlayer16/internal/resolver"
)

// StatusSource resolves the current stream status. Satisfied by
// *resolver.StatusResolver in production and by stubs in tests.
type StatusSource interface {
	Resolve(ctx context.Context) (*models.StreamStatus, error)
}

// Server owns the HTTP surface of the status service
type Server struct {
	Config      *config.Config
	Source      StatusSource
	MockService *mocks.MockService
	Version     string

	log *logger.Logger
}

// NewServer wires the resolver, and the mock service when mockup mode is
// enabled, from the loaded configuration
func NewServer(cfg *config.Config) *Server {
	version := config.GetVersion()

	server := &Server{
		Config:  cfg,
		Version: version,
		log:     logger.GetGlobalLogger().WithComponent("server"),
	}

	server.Source = resolver.New(resolver.Options{
		BaseURL:   cfg.StreamBaseURL(),
		UserAgent: "HlivePlayer-status/" + version,
		Timeout:   cfg.StatusTimeout(),
	})

	if cfg.MockupMode {
		mocksDir := filepath.Join("internal", "mocks")
		server.MockService = mocks.NewMockService(mocksDir)
		server.log.Infof("Mockup mode enabled - serving canned status from %s", mocksDir)
	}

	return server
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Handle specific API routes first
	mux.HandleFunc("/api/status", s.HandleStatus)
	mux.HandleFunc("/health", s.HandleHealth)

	// Handle root path last (catch-all)
	mux.HandleFunc("/", s.HandleRoot)

	return mux
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/garalhogames-hue/HlivePlayer16/internal/models"
)

// HandleStatus serves the station status consumed by the web player.
// GET runs one resolution, OPTIONS answers the browser preflight without
// ever touching the stream server.
func (s *Server) HandleStatus(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.serveStatus(w, r)
	case http.MethodOptions:
		s.servePreflight(w)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) serveStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.currentStatus(r.Context())
	if err != nil {
		s.log.Error("status resolution failed", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Debugf("status resolved: state=%s listeners=%d", status.State, status.UniqueListeners)
	writeStatus(w, status)
}

// currentStatus picks the canned payload in mockup mode, the live resolver
// otherwise
func (s *Server) currentStatus(ctx context.Context) (*models.StreamStatus, error) {
	if s.MockService != nil {
		return s.MockService.LoadStreamStatus()
	}
	return s.Source.Resolve(ctx)
}

func (s *Server) servePreflight(w http.ResponseWriter) {
	applyCORS(w.Header())
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusNoContent)
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"service":   "hliveplayer-status",
		"version":   s.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// HandleRoot serves a small landing page naming the service endpoints
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, landingPage, s.Version, s.Config.StreamBaseURL())
}

const landingPage = `<!DOCTYPE html>
<html>
<head>
    <title>HlivePlayer Status Service</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; background: #f5f5f5; }
        .container { max-width: 800px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        h1 { color: #333; text-align: center; }
        .status { background: #e8f5e8; padding: 15px; border-radius: 5px; margin: 20px 0; }
        .endpoints { background: #f8f9fa; padding: 20px; border-radius: 5px; margin: 20px 0; }
        .endpoint { margin: 10px 0; }
        a { color: #007bff; text-decoration: none; }
        a:hover { text-decoration: underline; }
    </style>
</head>
<body>
    <div class="container">
        <h1>📻 HlivePlayer Status Service v%s</h1>
        <div class="status">
            <strong>Status:</strong> Service is running, resolving stream status from %s.
        </div>
        <div class="endpoints">
            <h3>Available Endpoints:</h3>
            <div class="endpoint"><strong>GET <a href="/api/status">/api/status</a></strong> - current station status (JSON)</div>
            <div class="endpoint"><strong>GET <a href="/health">/health</a></strong> - service health check</div>
        </div>
    </div>
</body>
</html>`

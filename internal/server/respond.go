package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/garalhogames-hue/HlivePlayer16/internal/models"
)

// applyCORS marks a response as readable from any origin. The player page
// lives on the station's own domain, not on this service, so every status
// response has to carry the permissive header, failures included.
func applyCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
}

// writeStatus sends the success envelope for a resolved status
func writeStatus(w http.ResponseWriter, status *models.StreamStatus) {
	response := models.StatusResponse{
		Success:   true,
		Timestamp: status.ResolvedAt.UTC().Format(time.RFC3339),
		Data: models.StatusPayload{
			Locutor:  status.Announcer,
			Programa: status.Program,
			Unicos:   status.UniqueListeners,
			Status:   status.State,
		},
	}

	applyCORS(w.Header())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// writeError sends the failure envelope. Resolution exhaustion and internal
// faults share one shape so the player only needs one error path.
func writeError(w http.ResponseWriter, code int, message string) {
	applyCORS(w.Header())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{Success: false, Error: message})
}

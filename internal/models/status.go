package models

import "time"

// StreamState says whether the station is currently on air
type StreamState string

const (
	StateOnline  StreamState = "online"
	StateOffline StreamState = "offline"
)

// StreamStatus is the normalized station status assembled from whichever
// upstream endpoint answered first. It is built fresh per resolution and
// never mutated afterwards.
type StreamStatus struct {
	Announcer       string      `json:"announcer"`
	Program         string      `json:"program"`
	UniqueListeners int         `json:"unique_listeners"`
	State           StreamState `json:"state"`
	ResolvedAt      time.Time   `json:"resolved_at"`
}

// StatusResponse is the success envelope served on /api/status
type StatusResponse struct {
	Success   bool          `json:"success"`
	Timestamp string        `json:"timestamp"`
	Data      StatusPayload `json:"data"`
}

// StatusPayload carries the resolved fields under the names the station's
// web player already consumes.
type StatusPayload struct {
	Locutor  string      `json:"locutor"`
	Programa string      `json:"programa"`
	Unicos   int         `json:"unicos"`
	Status   StreamState `json:"status"`
}

// ErrorResponse is the failure envelope shared by every handler error
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

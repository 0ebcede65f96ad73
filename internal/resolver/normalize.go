package resolver

import (
	"time"

	"github.com/garalhogames-hue/HlivePlayer16/internal/models"
)

// UnknownField fills announcer and program slots the station never reported.
// The web player renders it as-is, so it has to be a printable placeholder
// rather than an empty string.
const UnknownField = "—"

// buildStatus normalizes extracted fields into the public status shape.
// Missing text becomes the placeholder, missing or negative counts become 0,
// and the state is derived from listeners unless the server sent an explicit
// flag, which always wins.
func buildStatus(f statusFields, resolvedAt time.Time) *models.StreamStatus {
	status := &models.StreamStatus{
		Announcer:  UnknownField,
		Program:    UnknownField,
		ResolvedAt: resolvedAt,
	}

	if f.announcer != nil {
		status.Announcer = *f.announcer
	}
	if f.program != nil {
		status.Program = *f.program
	}
	if f.listeners != nil && *f.listeners > 0 {
		status.UniqueListeners = *f.listeners
	}

	live := status.UniqueListeners > 0
	if f.live != nil {
		live = *f.live
	}

	if live {
		status.State = models.StateOnline
	} else {
		status.State = models.StateOffline
	}

	return status
}

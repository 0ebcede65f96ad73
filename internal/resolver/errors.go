package resolver

import "fmt"

// ResolutionError is returned when every endpoint was tried and none
// produced a usable status. LastErr keeps the most recent underlying
// failure so callers can log what finally went wrong.
type ResolutionError struct {
	Attempts int
	LastErr  error
}

func (e *ResolutionError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("no usable status from any of %d endpoints, last error: %v", e.Attempts, e.LastErr)
	}
	return fmt.Sprintf("no usable status from any of %d endpoints", e.Attempts)
}

func (e *ResolutionError) Unwrap() error {
	return e.LastErr
}

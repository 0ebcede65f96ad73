package mocks

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/garalhogames-hue/HlivePlayer16/internal/models"
)

// MockService serves a canned stream status so the player front end can be
// developed without a reachable station
type MockService struct {
	mocksDir string
}

// NewMockService creates a new mock service rooted at mocksDir
func NewMockService(mocksDir string) *MockService {
	return &MockService{
		mocksDir: filepath.Join(mocksDir, "data"),
	}
}

// LoadStreamStatus loads the canned status. The resolution timestamp is
// refreshed on every call so the payload always looks current.
func (m *MockService) LoadStreamStatus() (*models.StreamStatus, error) {
	filePath := filepath.Join(m.mocksDir, "stream_status.json")
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open mock status file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock status file: %w", err)
	}

	var status models.StreamStatus
	if err := json.Unmarshal(content, &status); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mock status: %w", err)
	}

	status.ResolvedAt = time.Now()

	return &status, nil
}

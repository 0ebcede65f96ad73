package config

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// GetVersion returns the service version: APP_VERSION when the build
// pipeline sets it, otherwise the VERSION file plus the git commit count
// for local builds.
func GetVersion() string {
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	baseVersion := readBaseVersion()
	if count := gitCommitCount(); count > 0 {
		return baseVersion + "." + strconv.Itoa(count)
	}

	return baseVersion
}

// readBaseVersion reads the VERSION file at the repository root
func readBaseVersion() string {
	if content, err := os.ReadFile("VERSION"); err == nil {
		return strings.TrimSpace(string(content))
	}
	return "0.1"
}

// gitCommitCount counts commits for local version numbering
func gitCommitCount() int {
	output, err := exec.Command("git", "rev-list", "--count", "HEAD").Output()
	if err != nil {
		return 0
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return 0
	}

	return count
}

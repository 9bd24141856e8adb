package config

import (
	"time"

	"github.com/ytgrab/ytgrab/internal/platform"
)

// Default values
const (
	DefaultPollInterval = 200 * time.Millisecond

	MinPollInterval = 50 * time.Millisecond
	MaxPollInterval = 2 * time.Second
)

// Settings manages application configuration
type Settings struct {
	binaryPath     string
	destinationDir string
	pollInterval   time.Duration
}

// NewSettings creates settings populated with defaults
func NewSettings() *Settings {
	return &Settings{
		binaryPath:   platform.DefaultBinary,
		pollInterval: DefaultPollInterval,
	}
}

// GetBinaryPath returns the downloader executable path or name
func (s *Settings) GetBinaryPath() string {
	if s.binaryPath == "" {
		return platform.DefaultBinary
	}
	return s.binaryPath
}

// SetBinaryPath sets the downloader executable path or name
func (s *Settings) SetBinaryPath(path string) {
	if path == "" {
		path = platform.DefaultBinary
	}
	s.binaryPath = path
}

// GetDestinationDir returns the destination directory; empty means the
// tool's own default
func (s *Settings) GetDestinationDir() string {
	return s.destinationDir
}

// SetDestinationDir sets the destination directory
func (s *Settings) SetDestinationDir(dir string) {
	s.destinationDir = dir
}

// GetPollInterval returns the UI refresh cadence
func (s *Settings) GetPollInterval() time.Duration {
	if s.pollInterval <= 0 {
		return DefaultPollInterval
	}
	return s.pollInterval
}

// SetPollInterval sets the UI refresh cadence, clamped to a sane range
func (s *Settings) SetPollInterval(interval time.Duration) {
	if interval < MinPollInterval {
		interval = MinPollInterval
	}
	if interval > MaxPollInterval {
		interval = MaxPollInterval
	}
	s.pollInterval = interval
}

package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyServerBaseURL     = "server_base_url"
	KeyRequestTimeoutSec = "request_timeout_seconds"
)

// Default values
const (
	DefaultServerBaseURL     = "http://localhost:8000"
	DefaultRequestTimeoutSec = 30

	MinRequestTimeoutSec = 5
	MaxRequestTimeoutSec = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerBaseURL returns the configured classification backend base URL
func (s *Settings) GetServerBaseURL() string {
	url := s.app.Preferences().String(KeyServerBaseURL)
	if url == "" {
		s.SetServerBaseURL(DefaultServerBaseURL)
		return DefaultServerBaseURL
	}
	return url
}

// SetServerBaseURL sets the backend base URL
func (s *Settings) SetServerBaseURL(url string) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		url = DefaultServerBaseURL
	}
	s.app.Preferences().SetString(KeyServerBaseURL, url)
}

// GetRequestTimeout returns the HTTP request timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyRequestTimeoutSec)
	if seconds <= 0 {
		s.SetRequestTimeoutSec(DefaultRequestTimeoutSec)
		return DefaultRequestTimeoutSec * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// SetRequestTimeoutSec sets the HTTP request timeout in seconds
func (s *Settings) SetRequestTimeoutSec(seconds int) {
	if seconds < MinRequestTimeoutSec {
		seconds = MinRequestTimeoutSec
	}
	if seconds > MaxRequestTimeoutSec {
		seconds = MaxRequestTimeoutSec
	}
	s.app.Preferences().SetInt(KeyRequestTimeoutSec, seconds)
}

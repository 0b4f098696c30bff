package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServerBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	url := settings.GetServerBaseURL()
	if url != DefaultServerBaseURL {
		t.Errorf("Expected default server URL %s, got %s", DefaultServerBaseURL, url)
	}

	// Test setting custom value
	settings.SetServerBaseURL("https://classifier.example.com")
	if got := settings.GetServerBaseURL(); got != "https://classifier.example.com" {
		t.Errorf("Expected custom server URL, got %s", got)
	}

	// Trailing slashes and whitespace are normalized
	settings.SetServerBaseURL("  https://classifier.example.com/  ")
	if got := settings.GetServerBaseURL(); got != "https://classifier.example.com" {
		t.Errorf("Expected normalized server URL, got %s", got)
	}

	// Empty input falls back to the default
	settings.SetServerBaseURL("")
	if got := settings.GetServerBaseURL(); got != DefaultServerBaseURL {
		t.Errorf("Expected default after empty set, got %s", got)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if timeout := settings.GetRequestTimeout(); timeout != DefaultRequestTimeoutSec*time.Second {
		t.Errorf("Expected default timeout, got %v", timeout)
	}

	// Test setting custom value
	settings.SetRequestTimeoutSec(60)
	if timeout := settings.GetRequestTimeout(); timeout != 60*time.Second {
		t.Errorf("Expected 60s timeout, got %v", timeout)
	}

	// Test boundary values
	settings.SetRequestTimeoutSec(1) // Should be clamped to minimum
	if timeout := settings.GetRequestTimeout(); timeout != MinRequestTimeoutSec*time.Second {
		t.Errorf("Timeout should be clamped to %ds, got %v", MinRequestTimeoutSec, timeout)
	}

	settings.SetRequestTimeoutSec(600) // Should be clamped to maximum
	if timeout := settings.GetRequestTimeout(); timeout != MaxRequestTimeoutSec*time.Second {
		t.Errorf("Timeout should be clamped to %ds, got %v", MaxRequestTimeoutSec, timeout)
	}
}

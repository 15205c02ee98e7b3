package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ORS_API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "http://127.0.0.1:5000", cfg.ReportsAPIURL)
	assert.Equal(t, "driving-car", cfg.ORSProfile)
	assert.Equal(t, 5*time.Second, cfg.ReportsPollInterval)
	assert.Equal(t, 30*time.Second, cfg.LocationWatchTimeout)
	assert.Equal(t, 10*time.Second, cfg.LocationFixTimeout)
	assert.Equal(t, 18, cfg.LocationZoomThreshold)
	assert.Equal(t, 20, cfg.LocationZoom)
	assert.Equal(t, NavigationTriggerButton, cfg.NavigationTrigger)
	assert.Equal(t, time.Duration(0), cfg.HTTPClientTimeout)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("ORS_API_KEY", "test-key")
	t.Setenv("NAVIGATION_TRIGGER", "Always")
	t.Setenv("REPORTS_POLL_INTERVAL", "2s")
	t.Setenv("LOCATION_ZOOM_THRESHOLD", "not-a-number")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, NavigationTriggerAlways, cfg.NavigationTrigger)
	assert.Equal(t, 2*time.Second, cfg.ReportsPollInterval)
	assert.Equal(t, 18, cfg.LocationZoomThreshold, "invalid value falls back to default")

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	t.Setenv("ORS_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ORS_API_KEY")
}

func TestValidate_BadTrigger(t *testing.T) {
	cfg := &Config{ORSAPIKey: "k", NavigationTrigger: "sometimes", ReportsPollInterval: time.Second}
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadTimezone(t *testing.T) {
	cfg := &Config{ORSAPIKey: "k", NavigationTrigger: NavigationTriggerButton, ReportsPollInterval: time.Second, Timezone: "Mars/Olympus"}
	assert.Error(t, cfg.Validate())
}

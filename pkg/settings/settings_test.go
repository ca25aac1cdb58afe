package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	// Packages
	settings "github.com/mckinsey/ark-go/pkg/settings"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_settings_001(t *testing.T) {
	// Unset keys read their registered default
	assert := assert.New(t)
	s := settings.New(filepath.Join(t.TempDir(), "settings.json"), map[string]any{
		"streaming": true,
		"session":   "",
	})
	assert.True(s.GetBool("streaming"))
	assert.Equal("", s.GetString("session"))
	assert.Nil(s.Get("missing"))
}

func Test_settings_002(t *testing.T) {
	// Set values persist across store instances
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "settings.json")

	s := settings.New(path, map[string]any{"streaming": true})
	assert.NoError(s.Set("streaming", false))
	assert.NoError(s.Set("session", "session-1"))

	reloaded := settings.New(path, map[string]any{"streaming": true})
	assert.False(reloaded.GetBool("streaming"))
	assert.Equal("session-1", reloaded.GetString("session"))
}

func Test_settings_003(t *testing.T) {
	// Malformed persisted JSON silently falls back to defaults
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "settings.json")
	assert.NoError(os.WriteFile(path, []byte("{not json"), 0o600))

	s := settings.New(path, map[string]any{"streaming": true})
	assert.True(s.GetBool("streaming"))
	assert.Empty(s.Keys())
}

func Test_settings_004(t *testing.T) {
	// Removing a key reverts reads to the default
	assert := assert.New(t)
	s := settings.New(filepath.Join(t.TempDir(), "settings.json"), map[string]any{
		"session": "default-session",
	})
	assert.NoError(s.Set("session", "session-1"))
	assert.Equal("session-1", s.GetString("session"))
	assert.NoError(s.Set("session", nil))
	assert.Equal("default-session", s.GetString("session"))
}

func Test_settings_005(t *testing.T) {
	// A persisted value of the wrong type reads as the default
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "settings.json")
	assert.NoError(os.WriteFile(path, []byte(`{"streaming":"yes"}`), 0o600))

	s := settings.New(path, map[string]any{"streaming": true})
	assert.True(s.GetBool("streaming"))
}

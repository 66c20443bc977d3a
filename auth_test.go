package main

import (
	"bufio"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHeader(t *testing.T) {
	header := authHeader("dev-42")
	assert.Contains(t, header, `MediaBrowser Client="jellypick"`)
	assert.Contains(t, header, `DeviceId="dev-42"`)
}

func TestPromptTrimsInput(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  http://server:8096  \n"))
	assert.Equal(t, "http://server:8096", prompt(reader, ""))
}

func TestSaveCredentials(t *testing.T) {
	cfg := &Config{path: filepath.Join(t.TempDir(), "config.toml")}

	require.NoError(t, saveCredentials(cfg, "http://server:8096", "key", "u1"))

	reloaded, err := loadConfigFrom(cfg.path)
	require.NoError(t, err)
	assert.Equal(t, "http://server:8096", reloaded.Jellyfin.URL)
	assert.Equal(t, "key", reloaded.Jellyfin.APIKey)
	assert.Equal(t, "u1", reloaded.Jellyfin.UserID)
}

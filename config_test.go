package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := &Config{path: path}
	cfg.Jellyfin = JellyfinConfig{URL: "http://localhost:8096", APIKey: "key", UserID: "uid"}
	cfg.MPV = MPVConfig{DRMConnector: "HDMI-A-1", DRMMode: "3", AudioSpdif: "ac3,dts"}
	require.NoError(t, cfg.Save())

	loaded, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8096", loaded.Jellyfin.URL)
	assert.Equal(t, "key", loaded.Jellyfin.APIKey)
	assert.Equal(t, "HDMI-A-1", loaded.MPV.DRMConnector)
	assert.Equal(t, "ac3,dts", loaded.MPV.AudioSpdif)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfigFrom(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, &Config{path: cfg.path}, cfg)
	assert.False(t, cfg.hasCredentials())
}

func TestConfigSaveWritesWholeRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := &Config{path: path}
	cfg.MPV.AudioSpdif = "eac3"
	require.NoError(t, cfg.Save())

	// a second mutation overwrites the full record
	cfg.MPV.AudioSpdif = ""
	cfg.MPV.AudioDevice = "alsa"
	require.NoError(t, cfg.Save())

	loaded, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "", loaded.MPV.AudioSpdif)
	assert.Equal(t, "alsa", loaded.MPV.AudioDevice)
}

func TestDeviceIDPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := &Config{path: path}

	id, err := cfg.DeviceID()
	require.NoError(t, err)
	require.NotEmpty(t, id)

	loaded, err := loadConfigFrom(path)
	require.NoError(t, err)

	again, err := loaded.DeviceID()
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/google/uuid"
)

type Config struct {
	Jellyfin    JellyfinConfig    `toml:"jellyfin"`
	Device      DeviceConfig      `toml:"device"`
	MPV         MPVConfig         `toml:"mpv"`
	LastCommand LastCommandConfig `toml:"last_command"`

	// path the config was loaded from; Save writes back to it
	path string `toml:"-"`
}

type JellyfinConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
	UserID string `toml:"user_id"`
}

type DeviceConfig struct {
	ID string `toml:"id"`
}

// MPVConfig holds the persisted playback output preferences. AudioSpdif is a
// comma-joined subset of spdifCodecs in canonical table order.
type MPVConfig struct {
	DRMConnector string `toml:"drm_connector"`
	DRMMode      string `toml:"drm_mode"`
	AudioDevice  string `toml:"audio_device"`
	AudioSpdif   string `toml:"audio_spdif"`
}

type LastCommandConfig struct {
	Cmd string `toml:"cmd"`
}

func defaultConfigPath() string {
	path, err := xdg.ConfigFile(filepath.Join("jellypick", "config.toml"))
	if err != nil {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "jellypick", "config.toml")
	}
	return path
}

// configPath returns the first existing config file, or the default
// location if none exists yet.
func configPath() string {
	candidates := []string{
		filepath.Join(xdg.ConfigHome, "jellypick", "config.toml"),
		"config.toml",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return defaultConfigPath()
}

func LoadConfig() (*Config, error) {
	return loadConfigFrom(configPath())
}

func loadConfigFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{path: path}, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		return nil, err
	}
	config.path = path

	return &config, nil
}

// Save writes the whole settings record back; there is no partial-field
// patching at the storage layer.
func (c *Config) Save() error {
	return c.saveTo(c.savePath())
}

func (c *Config) savePath() string {
	if c.path != "" {
		return c.path
	}
	return configPath()
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	return encoder.Encode(c)
}

func (c *Config) hasCredentials() bool {
	return c.Jellyfin.URL != "" && c.Jellyfin.APIKey != "" && c.Jellyfin.UserID != ""
}

// DeviceID returns the persistent device identifier, minting and saving one
// on first use.
func (c *Config) DeviceID() (string, error) {
	if c.Device.ID != "" {
		return c.Device.ID, nil
	}
	c.Device.ID = uuid.NewString()
	if err := c.Save(); err != nil {
		return "", err
	}
	return c.Device.ID, nil
}

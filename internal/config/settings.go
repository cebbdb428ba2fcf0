package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/digitalec/deemon/internal/messages"
	"github.com/digitalec/deemon/internal/update"
)

// Config holds the update-check settings read from config.json.
// Other keys in the file are ignored.
type Config struct {
	CheckUpdate    bool   `json:"check_update"`
	ReleaseChannel string `json:"release_channel"`
}

// Default returns the settings used when config.json is absent.
func Default() Config {
	return Config{
		CheckUpdate:    true,
		ReleaseChannel: update.ChannelStable.String(),
	}
}

// Channel returns the parsed release channel.
func (c Config) Channel() (update.Channel, error) {
	return update.ParseChannel(c.ReleaseChannel)
}

// Load reads config.json at path. A missing file yields Default; keys missing
// from the file keep their default values.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New(messages.ConfigPathRequired)
	}
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf(messages.ConfigReadFmt, path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf(messages.ConfigInvalidFmt, path, err)
	}
	if _, err := cfg.Channel(); err != nil {
		return Config{}, fmt.Errorf(messages.ConfigInvalidFmt, path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New(messages.ConfigPathRequired)
	}
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf(messages.ConfigEncodeFmt, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.ConfigWriteFmt, path, err)
	}
	return nil
}

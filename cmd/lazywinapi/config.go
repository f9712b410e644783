//go:build windows

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/Microsoft/lazywinapi/clipboard"
)

const defaultConfigName = "lazywinapi.toml"

type config struct {
	LogLevel string `toml:"log-level" json:"log-level"`
	// BufferSize bounds clipboard and memory reads when no size is given.
	BufferSize int `toml:"buffer-size" json:"buffer-size"`
	// TextFormat is the format "clip get" and "clip set" use for text:
	// "text" (CF_TEXT) or "unicode" (CF_UNICODETEXT).
	TextFormat string `toml:"text-format" json:"text-format"`
	// OpenTimeout is how long clipboard commands retry while another window
	// holds the clipboard, as a Go duration. Empty or "0s" fails at once.
	OpenTimeout string `toml:"open-timeout" json:"open-timeout,omitempty"`
}

func defaultConfig() *config {
	return &config{
		LogLevel:   "warn",
		BufferSize: 4096,
		TextFormat: "unicode",
	}
}

// Returns config. If path is "" the default location, the directory of the
// executable, is checked. A missing default config is not an error.
func loadConfig(path string) (*config, error) {
	if path != "" {
		return readConfig(path)
	}
	if path, exists := configPresent(); exists {
		return readConfig(path)
	}
	return defaultConfig(), nil
}

// Reads config from path over the defaults and validates it.
func readConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*config, error) {
	conf := defaultConfig()
	if err := toml.Unmarshal(data, conf); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config data")
	}
	if conf.BufferSize <= 0 {
		return nil, errors.Errorf("buffer-size must be positive, got %d", conf.BufferSize)
	}
	if _, err := conf.textFormat(); err != nil {
		return nil, err
	}
	if _, err := conf.openTimeout(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *config) textFormat() (clipboard.Format, error) {
	switch c.TextFormat {
	case "text":
		return clipboard.CF_TEXT, nil
	case "unicode", "":
		return clipboard.CF_UNICODETEXT, nil
	}
	return 0, errors.Errorf("text-format must be %q or %q, got %q", "text", "unicode", c.TextFormat)
}

func (c *config) openTimeout() (time.Duration, error) {
	if c.OpenTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.OpenTimeout)
	if err != nil {
		return 0, errors.Wrap(err, "invalid open-timeout")
	}
	if d < 0 {
		return 0, errors.Errorf("open-timeout must not be negative, got %s", d)
	}
	return d, nil
}

// Checks to see if there is a lazywinapi.toml in the directory of the executable.
func configPresent() (string, bool) {
	path, err := os.Executable()
	if err != nil {
		return "", false
	}
	path = filepath.Join(filepath.Dir(path), defaultConfigName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", false
	}
	return path, true
}

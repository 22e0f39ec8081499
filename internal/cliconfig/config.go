// Package cliconfig resolves the command line client settings from flags, the
// environment (MOODLOG_*) and ~/.moodlog/config.yaml, in that order.
package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	KeyBaseURL    = "base_url"
	KeyTimeout    = "timeout"
	KeySessionDir = "session_dir"
	KeyLanguage   = "language"

	EnvPrefix         = "MOODLOG"
	configPathEnv     = "MOODLOG_CONFIG_PATH"
	defaultBaseURL    = "http://localhost:8080"
	defaultTimeout    = 15 * time.Second
	defaultSessionDir = "~/.moodlog/session"
)

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	SessionDir string
	// Language is empty when neither config nor flag set it; the caller then
	// detects it from the locale environment.
	Language string
	// File is the config file that was read, empty when none was found.
	File string
}

// New returns a viper instance with the moodlog defaults, config search paths
// and environment binding applied.
func New() (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyBaseURL, defaultBaseURL)
	v.SetDefault(KeyTimeout, defaultTimeout)
	v.SetDefault(KeySessionDir, defaultSessionDir)
	v.SetDefault(KeyLanguage, "")

	v.SetConfigName("config") // .yaml is implicit
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if override := strings.TrimSpace(os.Getenv(configPathEnv)); override != "" {
		v.AddConfigPath(override)
	}
	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(home, ".moodlog"))
	return v, nil
}

// Load reads the config file if there is one and returns the merged settings.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(v.GetString(KeyBaseURL)), "/")
	if baseURL == "" {
		return Config{}, errors.New("base_url must not be empty")
	}

	timeout := v.GetDuration(KeyTimeout)
	if timeout <= 0 {
		return Config{}, fmt.Errorf("timeout must be positive, got %q", v.GetString(KeyTimeout))
	}

	sessionDir, err := homedir.Expand(strings.TrimSpace(v.GetString(KeySessionDir)))
	if err != nil {
		return Config{}, fmt.Errorf("expand session_dir: %w", err)
	}
	if sessionDir == "" {
		return Config{}, errors.New("session_dir must not be empty")
	}

	return Config{
		BaseURL:    baseURL,
		Timeout:    timeout,
		SessionDir: sessionDir,
		Language:   strings.TrimSpace(v.GetString(KeyLanguage)),
		File:       v.ConfigFileUsed(),
	}, nil
}

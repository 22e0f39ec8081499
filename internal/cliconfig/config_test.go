package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv(configPathEnv, "")
	for _, key := range []string{KeyBaseURL, KeyTimeout, KeySessionDir, KeyLanguage} {
		name := EnvPrefix + "_" + strings.ToUpper(key)
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	homedir.Reset()
	t.Cleanup(homedir.Reset)
	return home
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := isolateHome(t)

	v, err := New()
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, filepath.Join(home, ".moodlog", "session"), cfg.SessionDir)
	assert.Empty(t, cfg.Language)
	assert.Empty(t, cfg.File)
}

func TestLoadReadsConfigFileAndEnvironment(t *testing.T) {
	home := isolateHome(t)
	configDir := filepath.Join(home, ".moodlog")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	content := "base_url: https://moodlog.example.com/\ntimeout: 5s\nlanguage: en\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o600))

	t.Setenv("MOODLOG_TIMEOUT", "30s")

	v, err := New()
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "https://moodlog.example.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, filepath.Join(configDir, "config.yaml"), cfg.File)
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	isolateHome(t)
	t.Setenv("MOODLOG_TIMEOUT", "0s")

	v, err := New()
	require.NoError(t, err)
	_, err = Load(v)
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"port": 9090, "docx_service_url": "http://converter:3001", "api_key": "secret"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "http://converter:3001", cfg.DocxServiceURL)
	assert.Equal(t, "secret", cfg.APIKey)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestFromEnvOverridesFileValues(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DOCX_SERVICE_URL", "http://env:3001")
	t.Setenv("CHROME_PATH", "")

	cfg := Config{Port: 8080, APIKey: "file-key"}
	require.NoError(t, cfg.FromEnv())
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "http://env:3001", cfg.DocxServiceURL)
}

func TestFromEnvRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := Config{}
	assert.Error(t, cfg.FromEnv())
}

func TestValidatePortRange(t *testing.T) {
	cfg := Config{Port: 0}
	assert.Error(t, cfg.Validate())

	cfg.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg.Port = 8080
	assert.NoError(t, cfg.Validate())
}

func TestValidateMissingChromeBinary(t *testing.T) {
	cfg := Config{Port: 8080, ChromePath: filepath.Join(t.TempDir(), "chrome")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "mine"}
	merged := cfg.MergeWithDefaults(Defaults())
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "http://localhost:3001", merged.DocxServiceURL)
	assert.Equal(t, "mine", merged.APIKey)
}

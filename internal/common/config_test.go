package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pricedash.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFiles_Defaults(t *testing.T) {
	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, "evals", config.Dashboard.Collection)
	assert.Equal(t, 100, config.Dashboard.ListLimit)
	assert.Equal(t, 25, config.Dashboard.PageSize)
	assert.Equal(t, "localhost", config.Server.Host)
	assert.False(t, config.IsProduction())

	interval, err := config.Dashboard.RefreshDuration()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, interval)
}

func TestLoadFromFiles_LaterFilesOverride(t *testing.T) {
	base := writeConfig(t, `
[server]
port = 9000

[dashboard]
collection = "staging_evals"
page_size = 10
`)
	override := writeConfig(t, `
[dashboard]
page_size = 50
`)

	config, err := LoadFromFiles(base, override)
	require.NoError(t, err)

	assert.Equal(t, 9000, config.Server.Port)
	assert.Equal(t, "staging_evals", config.Dashboard.Collection)
	assert.Equal(t, 50, config.Dashboard.PageSize)
}

func TestLoadFromFiles_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 9000
`)
	t.Setenv("PRICEDASH_ENV", "production")
	t.Setenv("PRICEDASH_SERVER_PORT", "9100")
	t.Setenv("PRICEDASH_BADGER_IN_MEMORY", "true")
	t.Setenv("PRICEDASH_DASHBOARD_COLLECTION", "evals_v2")
	t.Setenv("PRICEDASH_LOG_OUTPUT", "stdout, file")

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.True(t, config.IsProduction())
	assert.Equal(t, 9100, config.Server.Port)
	assert.True(t, config.Storage.Badger.InMemory)
	assert.Equal(t, "evals_v2", config.Dashboard.Collection)
	assert.Equal(t, []string{"stdout", "file"}, config.Logging.Output)
}

func TestLoadFromFiles_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "page size too large", content: "[dashboard]\npage_size = 500\n"},
		{name: "bad refresh interval", content: "[dashboard]\nrefresh_interval = \"soon\"\n"},
		{name: "bad log level", content: "[logging]\nlevel = \"loud\"\n"},
		{name: "unsupported storage", content: "[storage]\ntype = \"sqlite\"\n"},
		{name: "malformed toml", content: "[dashboard\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFiles(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestApplyFlagOverrides(t *testing.T) {
	config := NewDefaultConfig()

	ApplyFlagOverrides(config, 0, "")
	assert.Equal(t, 8085, config.Server.Port)

	ApplyFlagOverrides(config, 7000, "0.0.0.0")
	assert.Equal(t, 7000, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
}

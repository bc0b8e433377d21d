package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func chtmp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chtmp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://services7.arcgis.com/FGr1D95XCGALKXqM/arcgis/rest/services", cfg.Atlas.BaseURL)
	assert.Equal(t, "atlas-cli/1.0", cfg.Atlas.UserAgent)
	assert.Equal(t, 30, cfg.Atlas.TimeoutSecs)
	assert.Equal(t, 1000, cfg.Atlas.PageSize)
	assert.Equal(t, 1000, cfg.Atlas.MaxPages)
	assert.InDelta(t, 10, cfg.Atlas.RateLimit, 0.001)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "atlas.db", cfg.Store.DatabaseURL)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chtmp(t)

	// Build the fixture with the yaml encoder so field names stay in sync
	// with the struct tags.
	fixture := Config{
		Atlas:  AtlasConfig{PageSize: 500, MaxPages: 20},
		Store:  StoreConfig{Driver: "postgres", DatabaseURL: "postgres://localhost/atlas"},
		Server: ServerConfig{Port: 9090},
		Log:    LogConfig{Level: "debug", Format: "console"},
	}
	data, err := yaml.Marshal(&fixture)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Atlas.PageSize)
	assert.Equal(t, 20, cfg.Atlas.MaxPages)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/atlas", cfg.Store.DatabaseURL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Defaults still apply for unset values
	assert.Equal(t, "atlas-cli/1.0", cfg.Atlas.UserAgent)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chtmp(t)

	yamlDoc := `
store:
  driver: sqlite
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlDoc), 0644))

	t.Setenv("ATLAS_STORE_DRIVER", "postgres")
	t.Setenv("ATLAS_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chtmp(t)

	t.Setenv("ATLAS_SERVER_PORT", "3000")
	t.Setenv("ATLAS_ATLAS_PAGE_SIZE", "250")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 250, cfg.Atlas.PageSize)
}

func validDefaults() *Config {
	return &Config{
		Atlas: AtlasConfig{
			BaseURL:   "https://services7.arcgis.com/FGr1D95XCGALKXqM/arcgis/rest/services",
			PageSize:  1000,
			MaxPages:  1000,
			RateLimit: 10,
		},
		Store:  StoreConfig{Driver: "sqlite", DatabaseURL: "atlas.db"},
		Server: ServerConfig{Port: 8080},
	}
}

func TestValidateFetch(t *testing.T) {
	cfg := validDefaults()
	assert.NoError(t, cfg.Validate("fetch"))

	cfg.Atlas.PageSize = 0
	err := cfg.Validate("fetch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "atlas.page_size must be between 1 and 2000")

	cfg.Atlas.PageSize = 5000
	assert.Error(t, cfg.Validate("fetch"))
}

func TestValidateSnapshot_MissingDB(t *testing.T) {
	cfg := validDefaults()
	cfg.Store.DatabaseURL = ""

	err := cfg.Validate("snapshot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.database_url is required")
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	err := cfg.Validate("serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := validDefaults()
	err := cfg.Validate("unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

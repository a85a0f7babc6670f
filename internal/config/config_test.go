package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE", "SEARCH_LIMIT", "SEARCH_CASE_SENSITIVE", "DB_MIGRATE", "CORS_ORIGINS", "LOGLEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, 20, cfg.SearchLimit)
	assert.False(t, cfg.SearchCaseSensitive)
	assert.True(t, cfg.DbMigrate)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORAGE", "Memory")
	t.Setenv("SEARCH_LIMIT", "5")
	t.Setenv("SEARCH_CASE_SENSITIVE", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 5, cfg.SearchLimit)
	assert.True(t, cfg.SearchCaseSensitive)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadConfig_BadNumber(t *testing.T) {
	t.Setenv("SEARCH_LIMIT", "many")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Storage: StoragePostgres, Port: "8080", SearchLimit: 20}
	_, err := cfg.Validate()
	assert.Error(t, err, "postgres без DB_HOST должен быть ошибкой")

	cfg.DbHost, cfg.DbUser, cfg.DbName = "localhost", "blog", "crossblog"
	warnings, err := cfg.Validate()
	require.NoError(t, err)
	assert.Empty(t, warnings)

	mem := &Config{Storage: StorageMemory, Port: "8080", SearchLimit: 0}
	warnings, err = mem.Validate()
	require.NoError(t, err)
	assert.Len(t, warnings, 2)

	_, err = (&Config{Storage: "mongo"}).Validate()
	assert.Error(t, err)
}

func TestGetDSNSafe_HidesPassword(t *testing.T) {
	cfg := &Config{DbUser: "blog", DbPass: "s3cret", DbHost: "db", DbPort: "5432", DbName: "crossblog", DbSSLMode: "disable"}

	assert.Equal(t, "postgres://blog:s3cret@db:5432/crossblog?sslmode=disable", cfg.GetDSN())
	assert.NotContains(t, cfg.GetDSNSafe(), "s3cret")
}

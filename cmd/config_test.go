package cmd

import (
	"testing"
	"time"

	"tms/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	for _, key := range []string{"HTTP_PORT", "DB_HOST", "JWT_TTL", "SEED_DEMO", "CORS_ALLOW_ORIGINS", "LOG_LEVEL", "EXPORT_MAX_ROWS"} {
		t.Setenv(key, "")
	}

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 8*time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, queries.MaxExportRows, cfg.ExportMaxRows)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173, https://tms.example.com")
	t.Setenv("LOG_MAX_BACKUPS", "3")
	t.Setenv("EXPORT_MAX_ROWS", "500")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, []string{"http://localhost:5173", "https://tms.example.com"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, 500, cfg.ExportMaxRows)
}

func TestConfigFromEnv_ReportsEveryProblem(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_TTL", "soon")
	t.Setenv("SEED_DEMO", "maybe")

	_, err := ConfigFromEnv()
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrJWTSecretIsRequired)
	assert.Contains(t, err.Error(), "JWT_TTL")
	assert.Contains(t, err.Error(), "SEED_DEMO")
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		DBHost: "db", DBPort: "5432", DBUser: "tms", DBPassword: "pw",
		DBName: "tms", DBSslMode: "disable", DBTimeZone: "UTC",
	}

	assert.Equal(t, "host=db user=tms password=pw dbname=tms port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}

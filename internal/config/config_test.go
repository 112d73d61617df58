package config

import (
	"os"
	"path/filepath"
	"testing"

	"empinsight/internal"
	"empinsight/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "GIN_MODE", "DATA_FILE", "DATA_SHEET", "TREND_POINTS", "MATRIX_WORKERS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultGinMode, cfg.Server.GinMode)
	assert.Equal(t, DefaultDataFile, cfg.Data.File)
	assert.Empty(t, cfg.Data.Sheet)
	assert.Equal(t, DefaultTrendPoints, cfg.Analytics.TrendPoints)
	assert.Equal(t, DefaultMatrixWorkers, cfg.Analytics.MatrixWorkers)
	assert.Equal(t, internal.LogLevelInfo, cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_FILE", "staff.xlsx")
	t.Setenv("DATA_SHEET", "Staff")
	t.Setenv("TREND_POINTS", "50")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "staff.xlsx", cfg.Data.File)
	assert.Equal(t, "Staff", cfg.Data.Sheet)
	assert.Equal(t, 50, cfg.Analytics.TrendPoints)
	assert.Equal(t, internal.LogLevelDebug, cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"TREND_POINTS", "1"},
		{"TREND_POINTS", "10001"},
		{"MATRIX_WORKERS", "zero"},
		{"LOG_LEVEL", "chatty"},
		{"GIN_MODE", "production"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATA_FILE=from_dotenv.csv\n"), 0o644))

	// godotenv does not override variables that are already set, even empty ones
	require.NoError(t, os.Unsetenv("DATA_FILE"))
	t.Cleanup(func() { os.Unsetenv("DATA_FILE") })

	assert.True(t, LoadDotEnv(path))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv.csv", cfg.Data.File)

	assert.False(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

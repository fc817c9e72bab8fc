package config

import (
	"os"
	"path/filepath"
	"testing"

	"gocorr/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "DATA_FILE", "DATA_SHEET", "WEIGHT_COLUMN", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "", cfg.Data.File)
	assert.Equal(t, "Sheet1", cfg.Data.Sheet)
	assert.Equal(t, "weight", cfg.Data.WeightColumn)
	assert.Equal(t, "INFO", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("WEIGHT_COLUMN", "w")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(writeEnvFile(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "w", cfg.Data.WeightColumn)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "DATA_FILE=prices.xlsx\nDATA_SHEET=Daily\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prices.xlsx", cfg.Data.File)
	assert.Equal(t, "Daily", cfg.Data.Sheet)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "http")

	_, err := Load(writeEnvFile(t, ""))
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func writeEnvFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// chdir switches the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

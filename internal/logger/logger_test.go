package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/corbin/geoquiz/internal/config"
)

func TestNew_NoFileIsNop(t *testing.T) {
	log, err := New(&config.Config{})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geoquiz.log")
	log, err := New(&config.Config{
		Env: "production",
		Log: config.Log{File: path, Level: "info"},
	})
	require.NoError(t, err)

	log.Info("snapshot saved", zap.Int("index", 3))
	log.Debug("dropped")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"snapshot saved"`)
	assert.Contains(t, string(data), `"index":3`)
	assert.NotContains(t, string(data), "dropped")
}

func TestNew_DevelopmentLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geoquiz.log")
	log, err := New(&config.Config{
		Env: "local",
		Log: config.Log{File: path, Level: "warn"},
	})
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&config.Config{
		Log: config.Log{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"},
	})
	require.Error(t, err)
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Index.Backend)
	assert.Equal(t, 10, cfg.Corrector.MaxCandidates)
	assert.Equal(t, 1, cfg.Corrector.UnseenTrigramCount)
	assert.Equal(t, 0, cfg.Corrector.ReplaceFloor)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
corpus:
  dir: /data/reuters
  workers: 8
index:
  backend: redis
redis:
  addr: redis:6379
  prefix: test
log_level: debug
corrector:
  max_candidates: 5
  require_evidence: true
`), 0o644))
	t.Setenv("REDIS_ADDR", "other:6380")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/reuters", cfg.Corpus.Dir)
	assert.Equal(t, 8, cfg.Corpus.Workers)
	assert.Equal(t, BackendRedis, cfg.Index.Backend)
	assert.Equal(t, "other:6380", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "test", cfg.Redis.Prefix)
	assert.Equal(t, 5, cfg.Corrector.MaxCandidates)
	assert.True(t, cfg.Corrector.RequireEvidence)
	assert.Equal(t, 1, cfg.Corrector.UnseenTrigramCount, "unset fields keep defaults")
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("INDEX_BACKEND", "sqlite")
	_, err = Load("")
	assert.ErrorContains(t, err, "unknown index backend")
}

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Config{}.Level())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "WARN"}.Level())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "error"}.Level())
}

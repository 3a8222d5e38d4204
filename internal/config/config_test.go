package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.Seed)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FUNHUB_SCORES_PATH", "/tmp/scores.json")
	t.Setenv("FUNHUB_LOG_PATH", "/tmp/funhub.log")
	t.Setenv("FUNHUB_SEED", "12345")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/scores.json", cfg.ScoresPath)
	assert.Equal(t, "/tmp/funhub.log", cfg.LogPath)
	assert.Equal(t, int64(12345), cfg.Seed)
}

func TestLoadRejectsGarbageSeed(t *testing.T) {
	t.Setenv("FUNHUB_SEED", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}

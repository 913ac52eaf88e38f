package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvSnapshotDir, "")
	t.Setenv(EnvAnimationDir, "")
	t.Setenv(EnvKeyColumn, "")

	cfg := FromEnv()
	assert.Equal(t, DefaultSnapshotDir, cfg.SnapshotDir)
	assert.Equal(t, DefaultAnimationDir, cfg.AnimationDir)
	assert.Equal(t, DefaultKeyColumn, cfg.KeyColumn)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvSnapshotDir, "/srv/data")
	t.Setenv(EnvAnimationDir, "/srv/gifs")
	t.Setenv(EnvKeyColumn, "ticker")

	cfg := FromEnv()
	assert.Equal(t, "/srv/data", cfg.SnapshotDir)
	assert.Equal(t, "/srv/gifs", cfg.AnimationDir)
	assert.Equal(t, "ticker", cfg.KeyColumn)
}

func TestFromEnvBlankValuesFallBack(t *testing.T) {
	t.Setenv(EnvKeyColumn, "   ")
	assert.Equal(t, DefaultKeyColumn, FromEnv().KeyColumn)
}

func TestValidate(t *testing.T) {
	good := Config{SnapshotDir: "data", AnimationDir: "gifs", KeyColumn: "symbol"}
	assert.NoError(t, good.Validate())

	for _, bad := range []Config{
		{SnapshotDir: "", AnimationDir: "gifs", KeyColumn: "symbol"},
		{SnapshotDir: "data", AnimationDir: " ", KeyColumn: "symbol"},
		{SnapshotDir: "data", AnimationDir: "gifs", KeyColumn: ""},
	} {
		assert.Error(t, bad.Validate())
	}
}

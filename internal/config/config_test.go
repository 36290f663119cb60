package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the file and fills defaults", func(t *testing.T) {
		// Given: a file naming only some keys
		path := writeConfig(t, "backend: socket\nseed: 42\nredis:\n  host: cache\n")

		// When: loading it
		conf, err := Load(path)

		// Then: named keys win and the rest are defaults
		require.NoError(t, err)
		assert.Equal(t, BackendSocket, conf.Backend)
		assert.Equal(t, int64(42), conf.RandomSeed())
		assert.Equal(t, 3, conf.WireOffset)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, entity.DifficultyHard, conf.DefaultDifficulty())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "backend: raw\ndifficulty: easy\n")
		t.Setenv("TTT_BACKEND", "websocket")
		t.Setenv("TTT_WIRE_OFFSET", "48")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, BackendWebsocket, conf.Backend)
		assert.Equal(t, 48, conf.WireOffset)
		assert.Equal(t, entity.DifficultyEasy, conf.DefaultDifficulty())
	})

	t.Run("Missing file falls back to the environment", func(t *testing.T) {
		t.Setenv("TTT_STORAGE", "redis")

		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.NoError(t, err)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, BackendTerminal, conf.Backend)
	})

	t.Run("Rejects bad values", func(t *testing.T) {
		for name, body := range map[string]string{
			"backend":      "backend: carrier-pigeon\n",
			"storage":      "storage: floppy\n",
			"difficulty":   "difficulty: impossible\n",
			"small offset": "wire-offset: 2\n",
			"large offset": "wire-offset: 226\n",
		} {
			_, err := Load(writeConfig(t, body))
			require.ErrorIs(t, err, ErrInvalidConfig, name)
		}
	})

	t.Run("Zero seed uses the clock", func(t *testing.T) {
		conf := &Config{}

		assert.NotZero(t, conf.RandomSeed())
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(writeConfig(t, "backend: nowhere\n"))
	})
}

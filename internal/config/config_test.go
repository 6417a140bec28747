package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{"LOG_LEVEL", "LOG_FILE", "HUMAN_MARK", "MOVE_DELAY", "NO_COLOR"}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults when the file is missing", func(t *testing.T) {
		// Given: no config file and no env vars
		clearEnv(t)

		// When: loading the config
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults apply
		require.NoError(t, err)
		assert.Equal(t, &Config{
			LogLevel:  "info",
			HumanMark: "X",
			MoveDelay: time.Second,
		}, conf)
	})

	t.Run("Values from the file", func(t *testing.T) {
		// Given: a config file
		clearEnv(t)
		path := writeConfig(t, "log-level: debug\nhuman-mark: O\nmove-delay: 250ms\nno-color: true\nlog-file: /tmp/ttt.log\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, &Config{
			LogLevel:  "debug",
			LogFile:   "/tmp/ttt.log",
			HumanMark: "O",
			MoveDelay: 250 * time.Millisecond,
			NoColor:   true,
		}, conf)
	})

	t.Run("Env overrides the file", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "human-mark: O\n")
		t.Setenv("HUMAN_MARK", "X")
		t.Setenv("MOVE_DELAY", "0s")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "X", conf.HumanMark)
		assert.Equal(t, time.Duration(0), conf.MoveDelay)
	})

	t.Run("Invalid values are rejected", func(t *testing.T) {
		for _, body := range []string{
			"log-level: loud\n",
			"human-mark: Z\n",
			"move-delay: 1m\n",
		} {
			clearEnv(t)
			path := writeConfig(t, body)

			_, err := Load(path)

			assert.Error(t, err, body)
		}
	})
}

func TestMustLoad(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "log-level: loud\n")

	assert.Panics(t, func() { MustLoad(path) })
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.yml", filepath.Base(DefaultPath()))
	assert.Equal(t, appName, filepath.Base(filepath.Dir(DefaultPath())))
}

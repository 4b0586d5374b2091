package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// clearEnv hides overrides from the surrounding environment for one test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"LOG_LEVEL", "LOG_FILE", "COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad(t *testing.T) {
	t.Run("Uses defaults without a config file", func(t *testing.T) {
		// Given: no file and no overrides
		clearEnv(t)

		// When: loading a missing path
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the defaults apply
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, ColorAuto, conf.Color)
		assert.Empty(t, conf.LogFile)
	})

	t.Run("Reads the YAML file", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "log-level: debug\nlog-file: game.log\ncolor: never\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "debug", LogFile: "game.log", Color: ColorNever}, conf)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "log-level: debug\ncolor: never\n")
		t.Setenv("COLOR", "always")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, ColorAlways, conf.Color)
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "log-level: loud\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidLogLevel)
	})

	t.Run("Rejects an unknown color mode", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "color: rainbow\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidColor)
	})
}

func TestMustLoad(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "color: rainbow\n")

	assert.Panics(t, func() { MustLoad(path) })
}

func TestConfig_SlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelWarn,
	}

	for level, expected := range cases {
		conf := &Config{LogLevel: level}
		assert.Equal(t, expected, conf.SlogLevel(), level)
	}
}

package modlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("successful build returns configured logger", func(t *testing.T) {
		tmpDir := t.TempDir()

		logger, err := NewBuilder().
			Directory(tmpDir).
			Name("app").
			Extension("log").
			LevelString("debug").
			ConsoleLevel(LevelWarning).
			EnableConsole(false).
			ConsoleTarget("stderr").
			EnableFile(true).
			EnableColors(false).
			ShowTimestamp(false).
			UseIconsInFile(true).
			TimestampFormat("15:04:05").
			Sanitization("escape").
			SyncOnWrite(true).
			InternalErrorsToStderr(false).
			Build()

		if logger != nil {
			defer logger.Deinit()
		}

		require.NoError(t, err, "Builder.Build() should not return an error on valid config")
		require.NotNil(t, logger, "Builder.Build() should return a non-nil logger")
		assert.True(t, logger.IsInitialized())

		cfg := logger.GetConfig()
		assert.Equal(t, tmpDir, cfg.Directory)
		assert.Equal(t, "app", cfg.Name)
		assert.Equal(t, "log", cfg.Extension)
		assert.Equal(t, LevelWarning, cfg.ConsoleLevel)
		assert.Equal(t, LevelDebug, cfg.FileLevel)
		assert.False(t, cfg.EnableConsole)
		assert.Equal(t, "stderr", cfg.ConsoleTarget)
		assert.True(t, cfg.EnableFile)
		assert.False(t, cfg.EnableColors)
		assert.False(t, cfg.ShowTimestamp)
		assert.True(t, cfg.UseIconsInFile)
		assert.Equal(t, "15:04:05", cfg.TimestampFormat)
		assert.Equal(t, "escape", cfg.Sanitization)
		assert.True(t, cfg.SyncOnWrite)
		assert.False(t, cfg.InternalErrorsToStderr)

		assert.Equal(t, tmpDir, filepath.Dir(logger.LogFilePath()))
	})

	t.Run("builder error accumulation", func(t *testing.T) {
		logger, err := NewBuilder().
			LevelString("invalid-level-string").
			Directory("/some/dir").
			Build()

		require.Error(t, err, "Build should fail with an invalid level string")
		assert.Contains(t, err.Error(), "invalid level string")
		assert.Nil(t, logger, "A nil logger should be returned on build error")

		_, err = NewBuilder().LevelString("nope").Config()
		assert.Error(t, err)
	})

	t.Run("validation error", func(t *testing.T) {
		logger, err := NewBuilder().ConsoleTarget("printer").Build()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, logger)
	})

	t.Run("unavailable file fails the build", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), filePerm))

		logger, err := NewBuilder().
			EnableConsole(false).
			EnableFile(true).
			InternalErrorsToStderr(false).
			Directory(filepath.Join(blocker, "logs")).
			Build()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFileUnavailable)
		assert.Nil(t, logger)
	})
}

func TestBuilder_Config(t *testing.T) {
	b := NewBuilder().Name("svc")

	cfg, err := b.Config()
	require.NoError(t, err)
	assert.Equal(t, "svc", cfg.Name)

	// Returned config is a copy
	cfg.Name = "other"
	again, err := b.Config()
	require.NoError(t, err)
	assert.Equal(t, "svc", again.Name)
}

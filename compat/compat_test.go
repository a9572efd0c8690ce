package compat

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/modlog"
)

// createTestCompatBuilder creates a standard setup for compatibility adapter tests
func createTestCompatBuilder(t *testing.T) (*Builder, *modlog.Logger) {
	t.Helper()
	tmpDir := t.TempDir()
	appLogger, err := modlog.NewBuilder().
		Directory(tmpDir).
		LevelString("verbose").
		EnableConsole(false).
		EnableFile(true).
		ShowTimestamp(false).
		Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = appLogger.Deinit() })

	builder := NewBuilder().WithLogger(appLogger)
	return builder, appLogger
}

// readLogLines reads the logger's current file
func readLogLines(t *testing.T, logger *modlog.Logger) []string {
	t.Helper()
	path := logger.LogFilePath()
	require.NotEmpty(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestCompatBuilder(t *testing.T) {
	t.Run("with existing logger", func(t *testing.T) {
		builder, logger := createTestCompatBuilder(t)

		gnetAdapter, err := builder.BuildGnet()
		require.NoError(t, err)
		assert.Same(t, logger, gnetAdapter.log.Logger())

		l, err := builder.GetLogger()
		require.NoError(t, err)
		assert.Same(t, logger, l)
	})

	t.Run("with config", func(t *testing.T) {
		logCfg := modlog.DefaultConfig()
		logCfg.EnableConsole = false

		builder := NewBuilder().WithConfig(logCfg)
		fasthttpAdapter, err := builder.BuildFastHTTP()
		require.NoError(t, err)

		l, err := builder.GetLogger()
		require.NoError(t, err)
		defer l.Deinit()
		assert.Same(t, l, fasthttpAdapter.log.Logger())
		assert.True(t, l.IsInitialized())
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := NewBuilder().WithLogger(nil).BuildGnet()
		assert.Error(t, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		logCfg := modlog.DefaultConfig()
		logCfg.ConsoleTarget = "printer"
		_, err := NewBuilder().WithConfig(logCfg).BuildFastHTTP()
		assert.ErrorIs(t, err, modlog.ErrInvalidConfig)
	})
}

func TestGnetAdapter(t *testing.T) {
	builder, logger := createTestCompatBuilder(t)

	var fatalMsg string
	adapter, err := builder.BuildGnet(WithFatalHandler(func(msg string) {
		fatalMsg = msg
	}))
	require.NoError(t, err)

	adapter.Debugf("debug %d", 1)
	adapter.Infof("info %s", "two")
	adapter.Warnf("warn")
	adapter.Errorf("error %v", true)
	adapter.Fatalf("fatal %d", 5)

	assert.Equal(t, "fatal 5", fatalMsg)

	lines := readLogLines(t, logger)
	assert.Equal(t, []string{
		"[    gnet]   DEBUG debug 1",
		"[    gnet]    INFO info two",
		"[    gnet] WARNING warn",
		"[    gnet]   ERROR error true",
		"[    gnet]   FATAL fatal 5",
	}, lines)
}

func TestGnetAdapterTag(t *testing.T) {
	builder, logger := createTestCompatBuilder(t)

	adapter, err := builder.BuildGnet(WithGnetTag("eventloop"))
	require.NoError(t, err)

	adapter.Infof("tick")
	assert.Equal(t, []string{"[eventloo]    INFO tick"}, readLogLines(t, logger))
}

func TestFastHTTPAdapter(t *testing.T) {
	builder, logger := createTestCompatBuilder(t)

	adapter, err := builder.BuildFastHTTP()
	require.NoError(t, err)

	adapter.Printf("serving %s", "/index")
	adapter.Printf("connection error: %v", "reset")
	adapter.Printf("deprecated header")
	adapter.Printf("debug details")

	lines := readLogLines(t, logger)
	assert.Equal(t, []string{
		"[fasthttp]    INFO serving /index",
		"[fasthttp]   ERROR connection error: reset",
		"[fasthttp] WARNING deprecated header",
		"[fasthttp]   DEBUG debug details",
	}, lines)
}

func TestFastHTTPAdapterOptions(t *testing.T) {
	builder, logger := createTestCompatBuilder(t)

	adapter, err := builder.BuildFastHTTP(
		WithDefaultLevel(modlog.LevelWarning),
		WithLevelDetector(nil),
	)
	require.NoError(t, err)

	adapter.Printf("request failed")
	assert.Equal(t, []string{"[fasthttp] WARNING request failed"}, readLogLines(t, logger))
}

func TestDetectLogLevel(t *testing.T) {
	tests := []struct {
		msg      string
		expected modlog.Level
		detected bool
	}{
		{"panic: runtime error", modlog.LevelFatal, true},
		{"Error reading body", modlog.LevelError, true},
		{"dial failed", modlog.LevelError, true},
		{"WARNING: slow client", modlog.LevelWarning, true},
		{"debug: conn state", modlog.LevelDebug, true},
		{"trace id 42", modlog.LevelVerbose, true},
		{"ok", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			level, ok := DetectLogLevel(tt.msg)
			assert.Equal(t, tt.detected, ok)
			assert.Equal(t, tt.expected, level)
		})
	}
}

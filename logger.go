package modlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/modlog/formatter"
	"github.com/lixenwraith/modlog/sanitizer"
)

// Logger is the core struct that encapsulates all logger functionality.
// A single mutex serializes configuration changes, shutdown and every dispatch,
// so records are never interleaved and never observe a half-closed file.
type Logger struct {
	mu        sync.Mutex
	state     State
	formatter *formatter.Formatter

	initialized    atomic.Bool // lock-free fast path for dropped records
	internalErrors atomic.Bool
	reported       [failureClasses]atomic.Bool
	stats          counters

	// Replaceable for tests
	now    func() time.Time
	stdout io.Writer
	stderr io.Writer
}

// NewLogger creates an uninitialized Logger; records are dropped until Init or ApplyConfig
func NewLogger() *Logger {
	l := &Logger{
		formatter: formatter.New(),
		now:       time.Now,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	l.state.phase = phaseUninitialized
	l.internalErrors.Store(defaultConfig.InternalErrorsToStderr)
	return l
}

// Init configures the logger from the six basic options, keeping the remaining settings.
// Repeated calls reconfigure: an open log file is closed before a new one is created.
func (l *Logger) Init(consoleLevel, fileLevel Level, enableFile, enableColors, includeTimestamp, useIconsInFile bool) error {
	cfg := l.GetConfig()
	cfg.ConsoleLevel = consoleLevel
	cfg.FileLevel = fileLevel
	cfg.EnableFile = enableFile
	cfg.EnableColors = enableColors
	cfg.ShowTimestamp = includeTimestamp
	cfg.UseIconsInFile = useIconsInFile
	return l.ApplyConfig(cfg)
}

// ApplyConfig validates cfg and replaces the logger configuration wholesale.
// An invalid configuration leaves the logger untouched. If the log file cannot be
// created the logger still initializes in console-only mode and the returned error
// wraps ErrFileUnavailable.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("%w: configuration cannot be nil", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.Clone()
	mode, _ := sanitizer.ParseMode(cfg.Sanitization) // validated

	l.mu.Lock()
	defer l.mu.Unlock()

	// Release the previous file before opening a new one
	if l.state.file != nil {
		if err := closeLogFile(l.state.file); err != nil {
			l.internalLog("warning - %v\n", err)
		}
		l.state.file = nil
	}
	l.state.filePath = ""

	l.internalErrors.Store(cfg.InternalErrorsToStderr)
	for i := range l.reported {
		l.reported[i].Store(false)
	}

	var fileErr error
	if cfg.EnableFile {
		file, path, err := createLogFile(cfg, l.now())
		if err != nil {
			fileErr = fmtErrorf("%w: %w", ErrFileUnavailable, err)
			l.reportOnce(failFileOpen, "%v, continuing with console output only\n", err)
			cfg.EnableFile = false
		} else {
			l.state.file = file
			l.state.filePath = path
			l.stats.filesOpened.Add(1)
		}
	}

	l.formatter = formatter.New(sanitizer.New(mode)).
		TimestampFormat(cfg.TimestampFormat).
		ShowTimestamp(cfg.ShowTimestamp).
		Colors(cfg.EnableColors).
		Icons(cfg.UseIconsInFile)

	if cfg.ConsoleTarget == consoleStderr {
		l.state.console = l.stderr
	} else {
		l.state.console = l.stdout
	}

	l.state.config = cfg
	l.state.phase = phaseInitialized
	l.initialized.Store(true)

	return fileErr
}

// Deinit flushes and closes the log file and returns the logger to the uninitialized state.
// It is safe to call on a logger that was never initialized. The transition always
// completes; the returned error reports sync or close failures only.
func (l *Logger) Deinit() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.phase != phaseInitialized {
		return nil
	}

	l.state.phase = phaseShuttingDown
	l.initialized.Store(false)

	var finalErr error
	if l.state.file != nil {
		finalErr = closeLogFile(l.state.file)
		l.state.file = nil
	}
	l.state.filePath = ""
	l.state.texts = nil
	l.state.phase = phaseUninitialized

	return finalErr
}

// IsInitialized reports whether records are currently accepted
func (l *Logger) IsInitialized() bool {
	return l.initialized.Load()
}

// GetConfig returns a copy of the current configuration, or the defaults before initialization
func (l *Logger) GetConfig() *Config {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.config == nil {
		return DefaultConfig()
	}
	return l.state.config.Clone()
}

// LogFilePath returns the path of the log file created by the last initialization,
// or an empty string when file output is off or the logger is uninitialized
func (l *Logger) LogFilePath() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.phase != phaseInitialized {
		return ""
	}
	return l.state.filePath
}

// Stats returns a snapshot of the dispatch counters
func (l *Logger) Stats() Stats {
	return l.stats.snapshot()
}

// reportOnce writes an internal diagnostic the first time a failure class occurs after initialization
func (l *Logger) reportOnce(class failure, format string, args ...any) {
	if l.reported[class].Swap(true) {
		return
	}
	l.internalLog(format, args...)
}

// internalLog handles writing internal logger diagnostics to stderr, if enabled
func (l *Logger) internalLog(format string, args ...any) {
	if !l.internalErrors.Load() {
		return
	}

	if !strings.HasPrefix(format, "modlog: ") {
		format = "modlog: " + format
	}

	fmt.Fprintf(l.stderr, format, args...)
}

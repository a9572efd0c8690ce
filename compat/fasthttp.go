package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/modlog"
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter implements fasthttp's Logger on a module-tagged modlog handle
type FastHTTPAdapter struct {
	log           *modlog.Tagged
	defaultLevel  modlog.Level
	levelDetector func(string) (modlog.Level, bool) // Detects a level from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter tagged "fasthttp"
func NewFastHTTPAdapter(logger *modlog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		log:           logger.Tag("fasthttp"),
		defaultLevel:  modlog.LevelInfo,
		levelDetector: DetectLogLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when no level is detected
func WithDefaultLevel(level modlog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom level detector, nil disables detection
func WithLevelDetector(detector func(string) (modlog.Level, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected, ok := a.levelDetector(msg); ok {
			level = detected
		}
	}

	a.log.Log(level, modlog.Str(msg))
}

// DetectLogLevel attempts to detect a log level from message content
func DetectLogLevel(msg string) (modlog.Level, bool) {
	msgLower := strings.ToLower(msg)

	switch {
	case strings.Contains(msgLower, "fatal") || strings.Contains(msgLower, "panic"):
		return modlog.LevelFatal, true
	case strings.Contains(msgLower, "error") || strings.Contains(msgLower, "failed"):
		return modlog.LevelError, true
	case strings.Contains(msgLower, "warn") || strings.Contains(msgLower, "deprecated"):
		return modlog.LevelWarning, true
	case strings.Contains(msgLower, "debug"):
		return modlog.LevelDebug, true
	case strings.Contains(msgLower, "trace"):
		return modlog.LevelVerbose, true
	}

	return 0, false
}

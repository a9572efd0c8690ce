package modlog

import (
	"github.com/lixenwraith/modlog/formatter"
)

// Logger instance methods for logging at each level without a module tag.

// Verbose logs values at verbose level
func (l *Logger) Verbose(values ...Value) {
	l.Log(LevelVerbose, "", values...)
}

// Debug logs values at debug level
func (l *Logger) Debug(values ...Value) {
	l.Log(LevelDebug, "", values...)
}

// Info logs values at info level
func (l *Logger) Info(values ...Value) {
	l.Log(LevelInfo, "", values...)
}

// Warning logs values at warning level
func (l *Logger) Warning(values ...Value) {
	l.Log(LevelWarning, "", values...)
}

// Error logs values at error level
func (l *Logger) Error(values ...Value) {
	l.Log(LevelError, "", values...)
}

// Fatal logs values at fatal level. It does not exit the process.
func (l *Logger) Fatal(values ...Value) {
	l.Log(LevelFatal, "", values...)
}

// Fixed logs values that are shown regardless of thresholds
func (l *Logger) Fixed(values ...Value) {
	l.Log(LevelFixed, "", values...)
}

// Tagged attaches a module tag to every record logged through it.
// Declare one per source unit:
//
//	var log = modlog.Tag("netio")
//
//	log.Info(modlog.Str("listening on"), modlog.U16(port))
type Tagged struct {
	logger *Logger
	tag    string
}

// Tag returns a handle logging through l with tag, truncated to the module tag width
func (l *Logger) Tag(tag string) *Tagged {
	return &Tagged{logger: l, tag: formatter.TruncateTag(tag)}
}

// Name returns the module tag
func (t *Tagged) Name() string {
	return t.tag
}

// Logger returns the underlying logger
func (t *Tagged) Logger() *Logger {
	return t.logger
}

// Log logs values at level
func (t *Tagged) Log(level Level, values ...Value) {
	t.logger.Log(level, t.tag, values...)
}

func (t *Tagged) Verbose(values ...Value) { t.logger.Log(LevelVerbose, t.tag, values...) }
func (t *Tagged) Debug(values ...Value)   { t.logger.Log(LevelDebug, t.tag, values...) }
func (t *Tagged) Info(values ...Value)    { t.logger.Log(LevelInfo, t.tag, values...) }
func (t *Tagged) Warning(values ...Value) { t.logger.Log(LevelWarning, t.tag, values...) }
func (t *Tagged) Error(values ...Value)   { t.logger.Log(LevelError, t.tag, values...) }
func (t *Tagged) Fatal(values ...Value)   { t.logger.Log(LevelFatal, t.tag, values...) }
func (t *Tagged) Fixed(values ...Value)   { t.logger.Log(LevelFixed, t.tag, values...) }

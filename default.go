package modlog

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default returns the process-wide logger used by the package-level functions
func Default() *Logger {
	return defaultLogger
}

// Init initializes or reconfigures the process-wide logger
func Init(consoleLevel, fileLevel Level, enableFile, enableColors, includeTimestamp, useIconsInFile bool) error {
	return defaultLogger.Init(consoleLevel, fileLevel, enableFile, enableColors, includeTimestamp, useIconsInFile)
}

// ApplyConfig replaces the process-wide logger configuration
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// Deinit closes the process-wide logger's file and stops accepting records
func Deinit() error {
	return defaultLogger.Deinit()
}

// LogFilePath returns the process-wide logger's current log file path
func LogFilePath() string {
	return defaultLogger.LogFilePath()
}

// Tag returns a module handle on the process-wide logger
func Tag(tag string) *Tagged {
	return defaultLogger.Tag(tag)
}

// Log dispatches a record to the process-wide logger
func Log(level Level, tag string, values ...Value) {
	defaultLogger.Log(level, tag, values...)
}

// Verbose logs values at verbose level
func Verbose(values ...Value) {
	defaultLogger.Verbose(values...)
}

// Debug logs values at debug level
func Debug(values ...Value) {
	defaultLogger.Debug(values...)
}

// Info logs values at info level
func Info(values ...Value) {
	defaultLogger.Info(values...)
}

// Warning logs values at warning level
func Warning(values ...Value) {
	defaultLogger.Warning(values...)
}

// Error logs values at error level
func Error(values ...Value) {
	defaultLogger.Error(values...)
}

// Fatal logs values at fatal level without exiting
func Fatal(values ...Value) {
	defaultLogger.Fatal(values...)
}

// Fixed logs values regardless of thresholds
func Fixed(values ...Value) {
	defaultLogger.Fixed(values...)
}

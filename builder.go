package modlog

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new initialized Logger with the specified configuration.
// A log file that cannot be created fails the build.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()
	if err := logger.ApplyConfig(b.cfg); err != nil {
		_ = logger.Deinit()
		return nil, err
	}

	return logger, nil
}

// Config returns a copy of the configuration built so far
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cfg.Clone(), nil
}

// ConsoleLevel sets the console threshold
func (b *Builder) ConsoleLevel(level Level) *Builder {
	b.cfg.ConsoleLevel = level
	return b
}

// FileLevel sets the file threshold
func (b *Builder) FileLevel(level Level) *Builder {
	b.cfg.FileLevel = level
	return b
}

// LevelString sets both thresholds from a level name
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.ConsoleLevel = levelVal
	b.cfg.FileLevel = levelVal
	return b
}

// EnableConsole enables console output
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// ConsoleTarget selects "stdout" or "stderr"
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// EnableFile enables file output
func (b *Builder) EnableFile(enable bool) *Builder {
	b.cfg.EnableFile = enable
	return b
}

// EnableColors enables colored console level labels
func (b *Builder) EnableColors(enable bool) *Builder {
	b.cfg.EnableColors = enable
	return b
}

// ShowTimestamp toggles the timestamp field
func (b *Builder) ShowTimestamp(show bool) *Builder {
	b.cfg.ShowTimestamp = show
	return b
}

// UseIconsInFile writes level icons instead of labels to the file
func (b *Builder) UseIconsInFile(enable bool) *Builder {
	b.cfg.UseIconsInFile = enable
	return b
}

// TimestampFormat sets the timestamp layout
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// Sanitization sets the string sanitization mode
func (b *Builder) Sanitization(mode string) *Builder {
	b.cfg.Sanitization = mode
	return b
}

// Directory sets the log directory
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// Name sets the log file name prefix
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Extension sets the log file extension, without dot
func (b *Builder) Extension(ext string) *Builder {
	b.cfg.Extension = ext
	return b
}

// SyncOnWrite fsyncs every file line
func (b *Builder) SyncOnWrite(enable bool) *Builder {
	b.cfg.SyncOnWrite = enable
	return b
}

// InternalErrorsToStderr toggles internal diagnostics
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

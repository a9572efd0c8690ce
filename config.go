package modlog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"

	"github.com/lixenwraith/modlog/formatter"
	"github.com/lixenwraith/modlog/sanitizer"
)

// Config holds all logger configuration values
type Config struct {
	// Thresholds
	ConsoleLevel Level `toml:"console_level"` // Minimum level printed to the console
	FileLevel    Level `toml:"file_level"`    // Minimum level appended to the file

	// Sinks
	EnableConsole bool   `toml:"enable_console"`
	EnableFile    bool   `toml:"enable_file"`
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"

	// Formatting
	EnableColors    bool   `toml:"enable_colors"`     // ANSI color on console level labels
	ShowTimestamp   bool   `toml:"show_timestamp"`    // Prefix records with the dispatch time
	UseIconsInFile  bool   `toml:"use_icons_in_file"` // Level icon instead of label in file lines
	TimestampFormat string `toml:"timestamp_format"`  // Go time layout
	Sanitization    string `toml:"sanitization"`      // "none", "hex", "strip" or "escape"

	// File naming: <directory>/<name>_<YYYYMMDD_HHMMSS>.<extension>
	Directory string `toml:"directory"`
	Name      string `toml:"name"`
	Extension string `toml:"extension"`

	// Durability
	SyncOnWrite bool `toml:"sync_on_write"` // fsync after every file line, not only Error and above

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Report logger failures to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	ConsoleLevel: LevelVerbose,
	FileLevel:    LevelVerbose,

	EnableConsole: true,
	EnableFile:    false,
	ConsoleTarget: consoleStdout,

	EnableColors:    true,
	ShowTimestamp:   true,
	UseIconsInFile:  false,
	TimestampFormat: formatter.DefaultTimestampFormat,
	Sanitization:    "none",

	Directory: ".",
	Name:      "log",
	Extension: "txt",

	SyncOnWrite: false,

	InternalErrorsToStderr: true,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from the [log] table of a TOML file and returns a validated Config.
// A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct("log.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "log.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides keyed by toml tag
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmtErrorf("failed to apply overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig copies values found by the loader into cfg
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		if tomlTag := t.Field(i).Tag.Get("toml"); tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with type conversion.
// Level fields accept Level, integers and level names.
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case Level:
			field.SetInt(int64(v))
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		case string:
			level, err := ParseLevel(v)
			if err != nil {
				return err
			}
			field.SetInt(int64(level))
		default:
			return fmt.Errorf("expected level or int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if !c.ConsoleLevel.Valid() {
		return fmtErrorf("%w: invalid console_level: %d", ErrInvalidConfig, c.ConsoleLevel)
	}
	if !c.FileLevel.Valid() {
		return fmtErrorf("%w: invalid file_level: %d", ErrInvalidConfig, c.FileLevel)
	}

	if c.ConsoleTarget != consoleStdout && c.ConsoleTarget != consoleStderr {
		return fmtErrorf("%w: invalid console_target: '%s' (use stdout or stderr)", ErrInvalidConfig, c.ConsoleTarget)
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("%w: timestamp_format cannot be empty", ErrInvalidConfig)
	}

	if _, err := sanitizer.ParseMode(c.Sanitization); err != nil {
		return fmtErrorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.EnableFile {
		if strings.TrimSpace(c.Name) == "" {
			return fmtErrorf("%w: log name cannot be empty", ErrInvalidConfig)
		}
		if strings.ContainsAny(c.Name, `/\`) {
			return fmtErrorf("%w: log name cannot contain path separators: %s", ErrInvalidConfig, c.Name)
		}
		if strings.HasPrefix(c.Extension, ".") {
			return fmtErrorf("%w: extension should not start with dot: %s", ErrInvalidConfig, c.Extension)
		}
		if strings.TrimSpace(c.Directory) == "" {
			return fmtErrorf("%w: directory cannot be empty", ErrInvalidConfig)
		}
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

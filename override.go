package modlog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyConfigString applies string key-value overrides to the logger's current configuration.
// Each override should be in the format "key=value".
// The configuration is cloned before modification and applied as a whole.
//
// Example:
//
//	logger := modlog.NewLogger()
//	err := logger.ApplyConfigString(
//	    "console_level=warning",
//	    "enable_file=true",
//	    "directory=/var/log/app",
//	)
func (l *Logger) ApplyConfigString(overrides ...string) error {
	cfg := l.GetConfig()

	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return l.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("modlog: multiple configuration errors:")
	for i, err := range errs {
		// Individual errors already carry the package prefix
		errMsg := strings.TrimPrefix(err.Error(), "modlog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Thresholds
	case "console_level":
		level, err := ParseLevel(value)
		if err != nil {
			return fmtErrorf("invalid console_level value '%s': %w", value, err)
		}
		cfg.ConsoleLevel = level
	case "file_level":
		level, err := ParseLevel(value)
		if err != nil {
			return fmtErrorf("invalid file_level value '%s': %w", value, err)
		}
		cfg.FileLevel = level

	// Sinks
	case "enable_console":
		return parseBoolField(&cfg.EnableConsole, key, value)
	case "enable_file":
		return parseBoolField(&cfg.EnableFile, key, value)
	case "console_target":
		cfg.ConsoleTarget = value

	// Formatting
	case "enable_colors":
		return parseBoolField(&cfg.EnableColors, key, value)
	case "show_timestamp":
		return parseBoolField(&cfg.ShowTimestamp, key, value)
	case "use_icons_in_file":
		return parseBoolField(&cfg.UseIconsInFile, key, value)
	case "timestamp_format":
		cfg.TimestampFormat = value
	case "sanitization":
		cfg.Sanitization = value

	// File naming
	case "directory":
		cfg.Directory = value
	case "name":
		cfg.Name = value
	case "extension":
		cfg.Extension = value

	// Durability
	case "sync_on_write":
		return parseBoolField(&cfg.SyncOnWrite, key, value)

	// Internal error handling
	case "internal_errors_to_stderr":
		return parseBoolField(&cfg.InternalErrorsToStderr, key, value)

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}

func parseBoolField(dst *bool, key, value string) error {
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return fmtErrorf("invalid boolean value for %s '%s': %w", key, value, err)
	}
	*dst = boolVal
	return nil
}

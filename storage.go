package modlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// createLogFile creates a new, exclusive log file named after the creation time.
// Name collisions within the same second get a numeric suffix.
func createLogFile(cfg *Config, created time.Time) (*os.File, string, error) {
	if err := os.MkdirAll(cfg.Directory, dirPerm); err != nil {
		return nil, "", fmtErrorf("failed to create log directory '%s': %w", cfg.Directory, err)
	}

	base := cfg.Name + "_" + created.Format(fileTimeLayout)
	for attempt := 0; attempt < maxFileNameAttempts; attempt++ {
		path := filepath.Join(cfg.Directory, logFileName(base, cfg.Extension, attempt))

		file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY|os.O_APPEND, filePerm)
		if err == nil {
			return file, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmtErrorf("failed to open log file '%s': %w", path, err)
		}
	}

	return nil, "", fmtErrorf("no free log file name for '%s' in '%s' after %d attempts", base, cfg.Directory, maxFileNameAttempts)
}

// logFileName joins base, collision suffix and extension
func logFileName(base, ext string, attempt int) string {
	name := base
	if attempt > 0 {
		name = fmt.Sprintf("%s_%d", base, attempt)
	}
	if ext != "" {
		name += "." + ext
	}
	return name
}

// closeLogFile syncs and closes a log file, reporting both failures
func closeLogFile(file *os.File) error {
	var finalErr error
	if err := file.Sync(); err != nil {
		finalErr = fmtErrorf("failed to sync log file '%s': %w", file.Name(), err)
	}
	if err := file.Close(); err != nil {
		closeErr := fmtErrorf("failed to close log file '%s': %w", file.Name(), err)
		finalErr = combineErrors(finalErr, closeErr)
	}
	return finalErr
}

// writeFileLine appends a composed line to the file sink.
// A failed write disables the file sink until the next initialization. Caller holds mu.
func (l *Logger) writeFileLine(level Level, line []byte) {
	file := l.state.file

	if _, err := file.Write(line); err != nil {
		l.stats.fileWriteFailures.Add(1)
		l.reportOnce(failFileWrite, "failed to write log file '%s', file output disabled: %v\n", l.state.filePath, err)
		if closeErr := file.Close(); closeErr != nil {
			l.internalLog("warning - failed to close log file after write failure: %v\n", closeErr)
		}
		l.state.file = nil
		return
	}
	l.stats.fileLines.Add(1)

	if l.state.config.SyncOnWrite || AttributesOf(level).Rank >= AttributesOf(LevelError).Rank {
		if err := file.Sync(); err != nil {
			l.reportOnce(failFileSync, "warning - failed to sync log file '%s': %v\n", l.state.filePath, err)
		}
	}
}

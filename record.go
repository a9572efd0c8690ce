package modlog

// Log dispatches one record at level with an optional module tag.
// Records are dropped silently while the logger is uninitialized.
func (l *Logger) Log(level Level, tag string, values ...Value) {
	if !l.initialized.Load() {
		l.stats.dropped.Add(1)
		return
	}
	l.dispatch(level, tag, values)
}

// dispatch decides, composes and writes a record while holding the lock.
// A panic is recovered after the deferred unlock has run, so it never wedges later calls.
func (l *Logger) dispatch(level Level, tag string, values []Value) {
	defer func() {
		if r := recover(); r != nil {
			l.stats.recoveredPanics.Add(1)
			l.reportOnce(failPanic, "recovered from panic during dispatch: %v\n", r)
		}
	}()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Re-check under the lock, Deinit may have run since the fast path
	if l.state.phase != phaseInitialized {
		l.stats.dropped.Add(1)
		return
	}

	cfg := l.state.config
	toConsole := cfg.EnableConsole && ShouldEmit(level, cfg.ConsoleLevel)
	toFile := l.state.file != nil && ShouldEmit(level, cfg.FileLevel)
	if !toConsole && !toFile {
		return
	}

	timestamp := l.now()
	style := AttributesOf(level).style()
	texts := l.renderValues(values)

	if toConsole {
		line := l.formatter.Console(timestamp, tag, style, texts)
		if _, err := l.state.console.Write(line); err != nil {
			l.stats.consoleWriteFailures.Add(1)
			l.reportOnce(failConsoleWrite, "failed to write console output: %v\n", err)
		} else {
			l.stats.consoleLines.Add(1)
		}
	}

	if toFile {
		l.writeFileLine(level, l.formatter.File(timestamp, tag, style, texts))
	}
}

// renderValues formats values into the reusable text slice. Caller holds mu.
func (l *Logger) renderValues(values []Value) []string {
	texts := l.state.texts[:0]
	for _, v := range values {
		texts = append(texts, FormatValue(v))
	}
	l.state.texts = texts
	return texts
}

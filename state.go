package modlog

import (
	"io"
	"os"
	"sync/atomic"
)

// phase is the lifecycle position of a Logger
type phase int32

const (
	phaseUninitialized phase = iota
	phaseInitialized
	phaseShuttingDown
)

func (p phase) String() string {
	switch p {
	case phaseUninitialized:
		return "uninitialized"
	case phaseInitialized:
		return "initialized"
	case phaseShuttingDown:
		return "shutting_down"
	default:
		return "unknown"
	}
}

// State is the mutable runtime state of a logger, guarded by Logger.mu
type State struct {
	phase    phase
	config   *Config
	console  io.Writer
	file     *os.File // nil when the file sink is disabled or failed
	filePath string   // kept after a write failure so the partial file can be located
	texts    []string // rendered values of the record being dispatched
}

// failure classes reported once per initialization on the internal error channel
type failure int

const (
	failFileOpen failure = iota
	failFileWrite
	failFileSync
	failConsoleWrite
	failPanic
	failureClasses
)

// Stats is a snapshot of dispatch counters, cumulative over the logger's lifetime
type Stats struct {
	ConsoleLines         uint64 // Lines written to the console
	FileLines            uint64 // Lines appended to log files
	Dropped              uint64 // Records dispatched while uninitialized
	ConsoleWriteFailures uint64
	FileWriteFailures    uint64
	RecoveredPanics      uint64 // Dispatches aborted by a recovered panic
	FilesOpened          uint64
}

// counters holds the live values behind Stats
type counters struct {
	consoleLines         atomic.Uint64
	fileLines            atomic.Uint64
	dropped              atomic.Uint64
	consoleWriteFailures atomic.Uint64
	fileWriteFailures    atomic.Uint64
	recoveredPanics      atomic.Uint64
	filesOpened          atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		ConsoleLines:         c.consoleLines.Load(),
		FileLines:            c.fileLines.Load(),
		Dropped:              c.dropped.Load(),
		ConsoleWriteFailures: c.consoleWriteFailures.Load(),
		FileWriteFailures:    c.fileWriteFailures.Load(),
		RecoveredPanics:      c.recoveredPanics.Load(),
		FilesOpened:          c.filesOpened.Load(),
	}
}

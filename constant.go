package modlog

// Log levels, ordered by severity. Fixed marks always-shown banner records.
const (
	LevelVerbose Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
	LevelFixed
)

// File sink
const (
	// Layout of the creation timestamp embedded in log file names
	fileTimeLayout = "20060102_150405"
	// Upper bound on name collision suffixes tried for one initialization
	maxFileNameAttempts = 1000
	// Permissions of created log files and directories
	filePerm = 0644
	dirPerm  = 0755
)

// Console targets
const (
	consoleStdout = "stdout"
	consoleStderr = "stderr"
)

package modlog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/modlog/formatter"
)

// Level is the severity of a record
type Level int64

// Attributes are the static rendering and ranking properties of a level
type Attributes struct {
	Rank  int
	Label string
	Color formatter.Color
	Icon  string
}

// levelTable is indexed by Level; labels are right-aligned to a common width
var levelTable = [...]Attributes{
	LevelVerbose: {Rank: 0, Label: "VERBOSE", Color: formatter.ColorGray, Icon: "💬"},
	LevelDebug:   {Rank: 1, Label: "  DEBUG", Color: formatter.ColorCyan, Icon: "🐞"},
	LevelInfo:    {Rank: 2, Label: "   INFO", Color: formatter.ColorGreen, Icon: "ℹ️"},
	LevelWarning: {Rank: 3, Label: "WARNING", Color: formatter.ColorYellow, Icon: "⚠️"},
	LevelError:   {Rank: 4, Label: "  ERROR", Color: formatter.ColorRed, Icon: "❌"},
	LevelFatal:   {Rank: 5, Label: "  FATAL", Color: formatter.ColorMagenta, Icon: "💀"},
	LevelFixed:   {Rank: 6, Label: "  FIXED", Color: formatter.ColorWhite, Icon: "✅"},
}

// AttributesOf returns the attributes of a level.
// Levels outside the known set rank by their numeric value and render as LEVEL(n).
func AttributesOf(level Level) Attributes {
	if level.Valid() {
		return levelTable[level]
	}
	return Attributes{
		Rank:  int(level),
		Label: fmt.Sprintf("LEVEL(%d)", int64(level)),
		Color: formatter.ColorNone,
	}
}

// Valid reports whether level is one of the defined levels
func (l Level) Valid() bool {
	return l >= LevelVerbose && l <= LevelFixed
}

// String returns the lower-case name of the level, as accepted by ParseLevel
func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	case LevelFixed:
		return "fixed"
	default:
		return fmt.Sprintf("level(%d)", int64(l))
	}
}

// style converts level attributes to the composer's representation
func (a Attributes) style() formatter.Style {
	return formatter.Style{Label: a.Label, Color: a.Color, Icon: a.Icon}
}

// ShouldEmit reports whether a record at level passes a sink threshold.
// Fixed records pass every threshold.
func ShouldEmit(level, threshold Level) bool {
	if level == LevelFixed {
		return true
	}
	return AttributesOf(level).Rank >= AttributesOf(threshold).Rank
}

// ParseLevel converts a level name or number to a Level
func ParseLevel(levelStr string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(levelStr))
	switch s {
	case "verbose", "trace":
		return LevelVerbose, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "fixed":
		return LevelFixed, nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return 0, fmtErrorf("invalid level string: '%s' (use verbose, debug, info, warning, error, fatal, fixed)", levelStr)
}

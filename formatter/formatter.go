// Package formatter composes the console and file variants of a log line.
//
// A line has the fixed field order
//
//	[timestamp] [module tag] <level label or icon> <value1> ... <valueN>
//
// with fields and values separated by a single space and a trailing newline.
package formatter

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/modlog/sanitizer"
)

// TagWidth is the fixed column width of a module tag, excluding brackets
const TagWidth = 8

// DefaultTimestampFormat is sortable and carries microseconds
const DefaultTimestampFormat = "2006-01-02 15:04:05.000000"

// Color is a console color of a level label
type Color uint8

const (
	ColorNone Color = iota
	ColorGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorWhite
)

// ansiReset ends a colored segment
const ansiReset = "\x1b[0m"

// Code returns the ANSI escape sequence starting the color, empty for ColorNone
func (c Color) Code() string {
	switch c {
	case ColorGray:
		return "\x1b[90m"
	case ColorRed:
		return "\x1b[91m"
	case ColorGreen:
		return "\x1b[92m"
	case ColorYellow:
		return "\x1b[93m"
	case ColorCyan:
		return "\x1b[96m"
	case ColorMagenta:
		return "\x1b[95m"
	case ColorWhite:
		return "\x1b[97m"
	default:
		return ""
	}
}

// Style describes how a level is rendered on each sink
type Style struct {
	Label string
	Color Color
	Icon  string
}

// Formatter builds log lines into reusable buffers.
// Returned slices are valid until the next call producing the same variant;
// a Formatter is not safe for concurrent use.
type Formatter struct {
	sanitizer       *sanitizer.Sanitizer
	timestampFormat string
	showTimestamp   bool
	colors          bool
	icons           bool
	consoleBuf      []byte
	fileBuf         []byte
}

// New creates a formatter with the provided sanitizer
func New(s ...*sanitizer.Sanitizer) *Formatter {
	var san *sanitizer.Sanitizer
	if len(s) > 0 && s[0] != nil {
		san = s[0]
	} else {
		san = sanitizer.New() // passthrough
	}
	return &Formatter{
		sanitizer:       san,
		timestampFormat: DefaultTimestampFormat,
		showTimestamp:   true,
		consoleBuf:      make([]byte, 0, 256),
		fileBuf:         make([]byte, 0, 256),
	}
}

// TimestampFormat sets the timestamp layout
func (f *Formatter) TimestampFormat(format string) *Formatter {
	if format != "" {
		f.timestampFormat = format
	}
	return f
}

// ShowTimestamp sets whether lines start with a timestamp
func (f *Formatter) ShowTimestamp(show bool) *Formatter {
	f.showTimestamp = show
	return f
}

// Colors sets whether console labels are wrapped in ANSI color codes
func (f *Formatter) Colors(enable bool) *Formatter {
	f.colors = enable
	return f
}

// Icons sets whether file lines use the level icon instead of the label
func (f *Formatter) Icons(enable bool) *Formatter {
	f.icons = enable
	return f
}

// Console composes the console variant of a record
func (f *Formatter) Console(timestamp time.Time, tag string, style Style, values []string) []byte {
	f.consoleBuf = f.consoleBuf[:0]
	f.consoleBuf = f.appendPrefix(f.consoleBuf, timestamp, tag)

	// Color wraps the label segment only
	if code := style.Color.Code(); f.colors && code != "" {
		f.consoleBuf = append(f.consoleBuf, code...)
		f.consoleBuf = append(f.consoleBuf, style.Label...)
		f.consoleBuf = append(f.consoleBuf, ansiReset...)
	} else {
		f.consoleBuf = append(f.consoleBuf, style.Label...)
	}

	f.consoleBuf = f.appendValues(f.consoleBuf, values)
	return f.consoleBuf
}

// File composes the file variant of a record
func (f *Formatter) File(timestamp time.Time, tag string, style Style, values []string) []byte {
	f.fileBuf = f.fileBuf[:0]
	f.fileBuf = f.appendPrefix(f.fileBuf, timestamp, tag)

	if f.icons && style.Icon != "" {
		f.fileBuf = append(f.fileBuf, style.Icon...)
	} else {
		f.fileBuf = append(f.fileBuf, style.Label...)
	}

	f.fileBuf = f.appendValues(f.fileBuf, values)
	return f.fileBuf
}

// appendPrefix writes the optional timestamp and module tag fields, each followed by a space
func (f *Formatter) appendPrefix(buf []byte, timestamp time.Time, tag string) []byte {
	if f.showTimestamp {
		buf = timestamp.AppendFormat(buf, f.timestampFormat)
		buf = append(buf, ' ')
	}
	if tag != "" {
		buf = append(buf, ModuleTag(f.sanitizer.Sanitize(tag))...)
		buf = append(buf, ' ')
	}
	return buf
}

// appendValues writes space-prefixed values and the line terminator
func (f *Formatter) appendValues(buf []byte, values []string) []byte {
	for _, v := range values {
		buf = append(buf, ' ')
		buf = append(buf, f.sanitizer.Sanitize(v)...)
	}
	return append(buf, '\n')
}

// ModuleTag renders a tag truncated or left-padded to TagWidth runes inside brackets.
// An empty tag renders as an empty string.
func ModuleTag(tag string) string {
	if tag == "" {
		return ""
	}
	tag = TruncateTag(tag)

	var sb strings.Builder
	sb.Grow(TagWidth + 2)
	sb.WriteByte('[')
	for n := utf8.RuneCountInString(tag); n < TagWidth; n++ {
		sb.WriteByte(' ')
	}
	sb.WriteString(tag)
	sb.WriteByte(']')
	return sb.String()
}

// TruncateTag cuts a tag to at most TagWidth runes
func TruncateTag(tag string) string {
	count := 0
	for i := range tag {
		if count == TagWidth {
			return tag[:i]
		}
		count++
	}
	return tag
}

// Package sanitizer neutralizes non-printable and control characters in
// strings before they are written to a terminal or a log file.
package sanitizer

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects how offending runes are rewritten
type Mode uint8

const (
	// None passes input through unchanged
	None Mode = iota
	// HexEncode replaces non-printable runes with their UTF-8 bytes as "<xxyy>"
	HexEncode
	// Strip removes non-printable runes
	Strip
	// Escape rewrites control runes with JSON-style backslash escapes
	Escape
)

// String returns the configuration name of the mode
func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case HexEncode:
		return "hex"
	case Strip:
		return "strip"
	case Escape:
		return "escape"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode converts a configuration name to a Mode
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "hex":
		return HexEncode, nil
	case "strip":
		return Strip, nil
	case "escape":
		return Escape, nil
	default:
		return None, fmt.Errorf("invalid sanitization mode '%s' (use none, hex, strip, escape)", name)
	}
}

// Sanitizer rewrites strings according to its mode.
// A Sanitizer reuses an internal buffer and is not safe for concurrent use.
type Sanitizer struct {
	mode Mode
	buf  []byte
}

// New creates a sanitizer, defaulting to None
func New(mode ...Mode) *Sanitizer {
	m := None
	if len(mode) > 0 {
		m = mode[0]
	}
	return &Sanitizer{
		mode: m,
		buf:  make([]byte, 0, 256),
	}
}

// Mode returns the configured mode
func (s *Sanitizer) Mode() Mode {
	return s.mode
}

// Sanitize applies the configured mode to data
func (s *Sanitizer) Sanitize(data string) string {
	if s.mode == None || isClean(data, s.mode) {
		return data
	}

	s.buf = s.buf[:0]
	for _, r := range data {
		if !offending(r, s.mode) {
			s.buf = utf8.AppendRune(s.buf, r)
			continue
		}
		switch s.mode {
		case Strip:
			// dropped
		case HexEncode:
			var runeBytes [utf8.UTFMax]byte
			n := utf8.EncodeRune(runeBytes[:], r)
			s.buf = append(s.buf, '<')
			s.buf = append(s.buf, hex.EncodeToString(runeBytes[:n])...)
			s.buf = append(s.buf, '>')
		case Escape:
			s.buf = appendEscaped(s.buf, r)
		}
	}
	return string(s.buf)
}

// isClean reports whether data has nothing to rewrite, avoiding a copy
func isClean(data string, mode Mode) bool {
	for _, r := range data {
		if offending(r, mode) {
			return false
		}
	}
	return true
}

func offending(r rune, mode Mode) bool {
	if mode == Escape {
		return unicode.IsControl(r)
	}
	return !strconv.IsPrint(r) && !isJoiner(r)
}

// isJoiner keeps emoji presentation selectors and joiners intact, they are
// part of level icons and other common glyphs
func isJoiner(r rune) bool {
	return r == '\u200d' || (r >= '\ufe00' && r <= '\ufe0f')
}

func appendEscaped(buf []byte, r rune) []byte {
	switch r {
	case '\n':
		return append(buf, '\\', 'n')
	case '\r':
		return append(buf, '\\', 'r')
	case '\t':
		return append(buf, '\\', 't')
	case '\b':
		return append(buf, '\\', 'b')
	case '\f':
		return append(buf, '\\', 'f')
	default:
		return append(buf, fmt.Sprintf("\\u%04x", r)...)
	}
}

package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/modlog/sanitizer"
)

var (
	testTime  = time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)
	infoStyle = Style{Label: "   INFO", Color: ColorGreen, Icon: "ℹ️"}
)

func TestFormatterFieldOrder(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Formatter)
		tag      string
		values   []string
		expected string
	}{
		{
			name:     "timestamp tag label values",
			setup:    func(f *Formatter) {},
			tag:      "net",
			values:   []string{"hello", "42"},
			expected: "2025-03-14 09:26:53.589793 [     net]    INFO hello 42\n",
		},
		{
			name:     "no timestamp",
			setup:    func(f *Formatter) { f.ShowTimestamp(false) },
			tag:      "net",
			values:   []string{"hello"},
			expected: "[     net]    INFO hello\n",
		},
		{
			name:     "no tag",
			setup:    func(f *Formatter) { f.ShowTimestamp(false) },
			values:   []string{"hello"},
			expected: "   INFO hello\n",
		},
		{
			name:     "no values",
			setup:    func(f *Formatter) { f.ShowTimestamp(false) },
			tag:      "core",
			expected: "[    core]    INFO\n",
		},
		{
			name:     "custom timestamp format",
			setup:    func(f *Formatter) { f.ShowTimestamp(true).TimestampFormat("15:04:05") },
			values:   []string{"x"},
			expected: "09:26:53    INFO x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			tt.setup(f)
			assert.Equal(t, tt.expected, string(f.Console(testTime, tt.tag, infoStyle, tt.values)))
			assert.Equal(t, tt.expected, string(f.File(testTime, tt.tag, infoStyle, tt.values)))
		})
	}
}

func TestFormatterColors(t *testing.T) {
	f := New().ShowTimestamp(false).Colors(true)

	console := string(f.Console(testTime, "db", infoStyle, []string{"ready"}))
	assert.Equal(t, "[      db] \x1b[92m   INFO\x1b[0m ready\n", console)

	// File line never carries color codes
	file := string(f.File(testTime, "db", infoStyle, []string{"ready"}))
	assert.Equal(t, "[      db]    INFO ready\n", file)

	// A level without color is left untouched
	plain := Style{Label: "  PLAIN", Color: ColorNone}
	assert.Equal(t, "  PLAIN x\n", string(f.Console(testTime, "", plain, []string{"x"})))
}

func TestFormatterIcons(t *testing.T) {
	f := New().ShowTimestamp(false).Icons(true)

	assert.Equal(t, "ℹ️ ready\n", string(f.File(testTime, "", infoStyle, []string{"ready"})))
	// Console keeps the label
	assert.Equal(t, "   INFO ready\n", string(f.Console(testTime, "", infoStyle, []string{"ready"})))

	// Missing icon falls back to the label
	noIcon := Style{Label: "  DEBUG"}
	assert.Equal(t, "  DEBUG ready\n", string(f.File(testTime, "", noIcon, []string{"ready"})))
}

func TestFormatterBuffersIndependent(t *testing.T) {
	f := New().ShowTimestamp(false)

	console := f.Console(testTime, "", infoStyle, []string{"console"})
	file := f.File(testTime, "", infoStyle, []string{"file"})

	assert.Equal(t, "   INFO console\n", string(console))
	assert.Equal(t, "   INFO file\n", string(file))
}

func TestFormatterSanitizer(t *testing.T) {
	f := New(sanitizer.New(sanitizer.HexEncode)).ShowTimestamp(false)

	line := string(f.File(testTime, "t\x00g", infoStyle, []string{"a\nb", "✔"}))
	assert.Equal(t, "[  t<00>g]    INFO a<0a>b ✔\n", line)
}

func TestModuleTag(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a", "[       a]"},
		{"abcdefgh", "[abcdefgh]"},
		{"abcdefghijkl", "[abcdefgh]"},
		{"модульный", "[модульны]"},
		{"✔", "[       ✔]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ModuleTag(tt.input)
			assert.Equal(t, tt.expected, got)
			if tt.input != "" {
				inner := strings.TrimSuffix(strings.TrimPrefix(got, "["), "]")
				assert.Equal(t, TagWidth, len([]rune(inner)))
			}
		})
	}
}

func TestColorCodes(t *testing.T) {
	assert.Empty(t, ColorNone.Code())
	for _, c := range []Color{ColorGray, ColorRed, ColorGreen, ColorYellow, ColorCyan, ColorMagenta, ColorWhite} {
		assert.True(t, strings.HasPrefix(c.Code(), "\x1b["), "color %d", c)
	}
}

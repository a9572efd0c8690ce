package compat

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/lixenwraith/modlog"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter implements gnet's logging.Logger on a module-tagged modlog handle
type GnetAdapter struct {
	log          *modlog.Tagged
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter tagged "gnet"
func NewGnetAdapter(logger *modlog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		log: logger.Tag("gnet"),
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetTag overrides the module tag
func WithGnetTag(tag string) GnetOption {
	return func(a *GnetAdapter) {
		a.log = a.log.Logger().Tag(tag)
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.log.Debug(modlog.Str(fmt.Sprintf(format, args...)))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.log.Info(modlog.Str(fmt.Sprintf(format, args...)))
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.log.Warning(modlog.Str(fmt.Sprintf(format, args...)))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.log.Error(modlog.Str(fmt.Sprintf(format, args...)))
}

// Fatalf logs at fatal level and triggers the fatal handler.
// Fatal file lines are synced before the handler runs.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.log.Fatal(modlog.Str(msg))

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

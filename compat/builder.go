// Package compat adapts a modlog logger to the logging interfaces of gnet and fasthttp.
package compat

import (
	"fmt"

	"github.com/lixenwraith/modlog"
)

// Builder provides a flexible way to create configured logger adapters for gnet and fasthttp.
// It can use an existing *modlog.Logger instance or create a new one from a *modlog.Config.
type Builder struct {
	logger *modlog.Logger
	logCfg *modlog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// If this is set WithConfig is ignored.
func (b *Builder) WithLogger(l *modlog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("modlog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance.
// Used only if an existing logger is not provided via WithLogger.
func (b *Builder) WithConfig(cfg *modlog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*modlog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	l := modlog.NewLogger()
	cfg := b.logCfg
	if cfg == nil {
		cfg = modlog.DefaultConfig()
	}

	if err := l.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying *modlog.Logger instance, creating it if needed
func (b *Builder) GetLogger() (*modlog.Logger, error) {
	return b.getLogger()
}

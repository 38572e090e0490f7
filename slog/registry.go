package slog

import (
	"log/slog"

	"github.com/fwojciec/docset"
)

// Ensure LoggingRegistry implements docset.FilterRegistry.
var _ docset.FilterRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a FilterRegistry with debug logging for pipeline
// assembly.
type LoggingRegistry struct {
	next   docset.FilterRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next docset.FilterRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(name string, factory docset.FilterFactory) {
	r.next.Register(name, factory)
}

// Create instantiates the named filter, logging the lookup.
func (r *LoggingRegistry) Create(name string) (docset.Filter, error) {
	filter, err := r.next.Create(name)
	if err != nil {
		r.logger.Error("filter lookup", "name", name, "err", err)
		return nil, err
	}
	r.logger.Debug("filter created", "name", name)
	return filter, nil
}

// Names delegates to the wrapped registry.
func (r *LoggingRegistry) Names() []string {
	return r.next.Names()
}

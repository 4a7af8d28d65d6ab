package session

import (
	"io"
	"log/slog"

	"github.com/aretw0/sd/pkg/core"
)

// options holds the internal configuration for a Session.
type options struct {
	out        io.Writer
	logger     *slog.Logger
	clock      core.Clock
	assetNamer func() string
	archiveDir string
}

// Option defines a functional option for configuring a Session.
type Option func(*options)

// WithOutput sets where user-facing messages are written (default stdout).
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source used for dates and entry times.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithAssetNamer overrides the generator of asset file names (without
// extension). The default produces random UUIDs.
func WithAssetNamer(fn func() string) Option {
	return func(o *options) {
		o.assetNamer = fn
	}
}

// WithArchiveDir sets the name of the archive directory inside the working
// directory (default "archive").
func WithArchiveDir(name string) Option {
	return func(o *options) {
		o.archiveDir = name
	}
}

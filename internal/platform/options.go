package platform

import (
	"io"
	"log/slog"

	"github.com/aretw0/sd/pkg/core"
)

// options holds the internal configuration for a Runtime.
type options struct {
	logger      *slog.Logger
	storage     core.Storage
	prompter    core.Prompter
	in          io.Reader
	out         io.Writer
	historyFile string
	archiveDir  string
	clock       core.Clock
}

// Option defines a functional option for configuring a Runtime.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		archiveDir: core.DefaultArchiveDir,
	}
}

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStorage injects a custom storage adapter (e.g. a fake in tests).
// If provided, the filesystem adapter is skipped.
func WithStorage(storage core.Storage) Option {
	return func(o *options) {
		o.storage = storage
	}
}

// WithPrompter injects a custom prompter. If provided, the line editor is
// not started.
func WithPrompter(p core.Prompter) Option {
	return func(o *options) {
		o.prompter = p
	}
}

// WithInput reads answers from r instead of the terminal.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.in = r
	}
}

// WithOutput sets where prompts and messages are written.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithHistoryFile persists line editor history at path.
func WithHistoryFile(path string) Option {
	return func(o *options) {
		o.historyFile = path
	}
}

// WithArchiveDir sets the archive directory name.
func WithArchiveDir(name string) Option {
	return func(o *options) {
		if name != "" {
			o.archiveDir = name
		}
	}
}

// WithClock overrides the session time source.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

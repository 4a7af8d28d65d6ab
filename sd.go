package sd

import (
	"io"
	"log/slog"

	"github.com/aretw0/sd/internal/platform"
	"github.com/aretw0/sd/pkg/core"
)

// --- Types ---

// Runtime is a wired session together with its adapters.
type Runtime = platform.Runtime

// --- Configuration ---

// Option defines a functional option for configuring sd.
type Option = platform.Option

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStorage injects a custom storage adapter.
func WithStorage(storage core.Storage) Option {
	return platform.WithStorage(storage)
}

// WithPrompter injects a custom prompter.
func WithPrompter(p core.Prompter) Option {
	return platform.WithPrompter(p)
}

// WithInput reads answers from r instead of the terminal.
func WithInput(r io.Reader) Option {
	return platform.WithInput(r)
}

// WithOutput sets where prompts and messages are written.
func WithOutput(w io.Writer) Option {
	return platform.WithOutput(w)
}

// WithHistoryFile persists line editor history at path.
func WithHistoryFile(path string) Option {
	return platform.WithHistoryFile(path)
}

// WithArchiveDir sets the archive directory name (default "archive").
func WithArchiveDir(name string) Option {
	return platform.WithArchiveDir(name)
}

// WithClock overrides the time source for dates and entry times.
func WithClock(clock core.Clock) Option {
	return platform.WithClock(clock)
}

// --- Factory ---

// New wires a session for the working directory dir.
func New(dir string, opts ...Option) (*Runtime, error) {
	return platform.New(dir, opts...)
}

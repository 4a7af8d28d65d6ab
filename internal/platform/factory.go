package platform

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/sd/pkg/adapters/fs"
	"github.com/aretw0/sd/pkg/adapters/prompt"
	"github.com/aretw0/sd/pkg/core"
	"github.com/aretw0/sd/pkg/session"
)

// Runtime bundles a session with the adapters it was wired to.
type Runtime struct {
	Session  *session.Session
	Storage  core.Storage
	Prompter core.Prompter

	// Warning is set when the line editor could not start and basic input
	// is used instead. It is not fatal.
	Warning error

	closer io.Closer
}

// New wires a session for the working directory dir.
func New(dir string, opts ...Option) (*Runtime, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.out == nil {
		o.out = os.Stdout
	}

	rt := &Runtime{Storage: o.storage, Prompter: o.prompter}

	if rt.Storage == nil {
		rt.Storage = fs.NewStorage(fs.Config{Logger: o.logger})
	}

	if rt.Prompter == nil {
		popts := []prompt.Option{
			prompt.WithOutput(o.out),
			prompt.WithLogger(o.logger),
			prompt.WithHistoryFile(o.historyFile),
		}
		if o.in != nil {
			popts = append(popts, prompt.WithInput(o.in))
		}
		p, err := prompt.New(popts...)
		if p == nil {
			return nil, err
		}
		rt.Prompter = p
		rt.Warning = err
		rt.closer = p
	}

	sopts := []session.Option{
		session.WithLogger(o.logger),
		session.WithOutput(o.out),
		session.WithArchiveDir(o.archiveDir),
	}
	if o.clock != nil {
		sopts = append(sopts, session.WithClock(o.clock))
	}
	rt.Session = session.New(dir, rt.Storage, rt.Prompter, sopts...)

	return rt, nil
}

// Close releases the line editor, if one was started.
func (r *Runtime) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

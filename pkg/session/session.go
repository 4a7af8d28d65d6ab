// Package session drives the interactive note workflow: creating a note,
// then appending timestamped entries to it from a prompt loop that also
// understands a handful of colon commands (see Help).
//
// A Session never terminates the process. Fatal conditions are returned as
// errors (see the sentinels in package core) for the caller to act on.
package session

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/sd/pkg/core"
)

// Session operates on the notes of one working directory.
type Session struct {
	dir        string
	storage    core.Storage
	prompter   core.Prompter
	out        io.Writer
	logger     *slog.Logger
	clock      core.Clock
	assetNamer func() string
	archiveDir string

	// terminated is set once the empty-directory redirect has run; every
	// enclosing loop unwinds without prompting again. The next outermost
	// flow clears it.
	terminated bool

	depth    int
	current  string
	entries  int
	images   int
	archived int
}

// New creates a Session for the working directory dir.
func New(dir string, storage core.Storage, prompter core.Prompter, opts ...Option) *Session {
	o := &options{
		out:        os.Stdout,
		clock:      time.Now,
		assetNamer: uuid.NewString,
		archiveDir: core.DefaultArchiveDir,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if dir == "" {
		dir = "."
	}
	if o.archiveDir == "" {
		o.archiveDir = core.DefaultArchiveDir
	}

	return &Session{
		dir:        dir,
		storage:    storage,
		prompter:   prompter,
		out:        o.out,
		logger:     o.logger,
		clock:      o.clock,
		assetNamer: o.assetNamer,
		archiveDir: o.archiveDir,
	}
}

// Dir returns the working directory.
func (s *Session) Dir() string {
	return s.dir
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// report prints a recoverable error as a sentence.
func (s *Session) report(err error) {
	msg := err.Error()
	if msg != "" {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	s.println(msg)
}

// prepareDir creates the working directory when needed and announces it.
func (s *Session) prepareDir() error {
	if err := s.storage.EnsureDir(s.dir); err != nil {
		return err
	}
	s.printf("Working directory: %s\n", s.dir)
	return nil
}

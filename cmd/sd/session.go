package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/sd"
	"github.com/aretw0/sd/pkg/core"
	"github.com/aretw0/sd/pkg/session"
)

// noteFlags are shared by the commands that take a note and a directory.
type noteFlags struct {
	directory string
	name      string
}

func (f *noteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.directory, "directory", "d", "", "Working directory (default from config, else .)")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Name of the note")
}

// resolve returns the working directory and note name, rejecting more than
// one positional argument.
func (f *noteFlags) resolve(args []string) (dir, name string, err error) {
	if len(args) > 1 {
		return "", "", core.ErrUsage
	}

	dir = f.directory
	if dir == "" {
		dir = cfg.Directory
	}

	name = f.name
	if len(args) == 1 {
		name = args[0]
	}
	return dir, name, nil
}

// runSession wires a session for dir and runs fn on it. Every error is fatal.
func runSession(dir string, fn func(ctx context.Context, s *session.Session) error) {
	logger := slog.Default()

	rt, err := sd.New(dir,
		sd.WithLogger(logger),
		sd.WithHistoryFile(cfg.HistoryFile),
		sd.WithArchiveDir(cfg.ArchiveDir),
	)
	if err != nil {
		fatal("Failed to initialize sd", err)
	}
	if rt.Warning != nil {
		fmt.Fprintf(os.Stderr, "%v\n", rt.Warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = fn(ctx, rt.Session)
	stop()
	logger.Debug("session ended", "session", rt.Session.State())
	if in, ok := rt.Storage.(introspection.Introspectable); ok {
		logger.Debug("storage state", "storage", in.State())
	}
	_ = rt.Close()
	if err != nil {
		exitWith(err)
	}
}

// exitWith prints a fatal error the way the user expects to read it and
// exits with status 1.
func exitWith(err error) {
	switch {
	case errors.Is(err, core.ErrUsage):
		fmt.Println("Too many arguments supplied")
		os.Exit(1)
	case errors.Is(err, core.ErrAlreadyExists):
		fatal("File already exists", err)
	case errors.Is(err, core.ErrNoteNotFound):
		fatal("File does not exist", err)
	case errors.Is(err, core.ErrEmptyTitle),
		errors.Is(err, core.ErrEmptyName),
		errors.Is(err, core.ErrNoNotes):
		fmt.Fprintln(os.Stderr, capitalize(err.Error()))
		os.Exit(1)
	default:
		fatal("Error", err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/sd/pkg/core"
)

// EmptyDirMessage is printed before redirecting an empty working directory
// into the new-note flow.
const EmptyDirMessage = "No notes found in the specified directory. Create a new note below to get started."

// NewNote creates a note and then opens it. An empty name is asked for.
//
// Fatal errors: core.ErrEmptyName, core.ErrAlreadyExists,
// core.ErrEmptyTitle, plus anything returned by the open-note flow.
func (s *Session) NewNote(ctx context.Context, name string) error {
	s.begin()
	if err := s.prepareDir(); err != nil {
		return err
	}

	if name == "" {
		raw, err := s.prompter.Input(ctx, "Note file name: ")
		if err != nil {
			return err
		}
		name = raw
	}

	note := core.NewNoteRef(s.dir, name)
	if note.Name == "" {
		return core.ErrEmptyName
	}

	exists, err := s.storage.Exists(note.Path())
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s: %w", note.Path(), core.ErrAlreadyExists)
	}

	title, err := s.prompter.Input(ctx, "Note title: ")
	if err != nil {
		return err
	}
	if title == "" {
		return core.ErrEmptyTitle
	}

	content, err := core.RenderTemplate(title, core.FormatDate(s.clock()))
	if err != nil {
		return err
	}
	if err := s.storage.Create(note.Path(), []byte(content)); err != nil {
		return err
	}

	s.println("File created")
	s.logger.Debug("note created", "path", note.Path(), "title", title)

	return s.OpenNote(ctx, note.Name)
}

// OpenNote runs the interactive loop on a note until the user quits or
// archives it. An empty name is chosen from the directory's notes. When the
// directory holds no notes at all, the new-note flow runs instead and the
// whole session ends after it.
//
// Fatal errors: core.ErrNoteNotFound, core.ErrNoNotes, and any error of a
// nested flow started with :open or :new.
func (s *Session) OpenNote(ctx context.Context, name string) error {
	s.begin()
	if err := s.prepareDir(); err != nil {
		return err
	}

	redirected, err := s.redirectIfEmpty(ctx)
	if err != nil || redirected {
		return err
	}

	if name == "" {
		name, err = s.chooseNote(ctx)
		if err != nil {
			return err
		}
	}

	note := core.NewNoteRef(s.dir, name)
	s.printf("Opening note: %s\n", note.Name)
	s.printf("File path: %s\n", note.Path())

	exists, err := s.storage.Exists(note.Path())
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s: %w", note.Path(), core.ErrNoteNotFound)
	}

	return s.loop(ctx, note)
}

// begin clears the end-of-session mark left by a previous redirect when a
// flow is started from outside any note loop.
func (s *Session) begin() {
	if s.depth == 0 {
		s.terminated = false
	}
}

func (s *Session) redirectIfEmpty(ctx context.Context) (bool, error) {
	names, err := s.storage.List(s.dir, core.NoteExt)
	if err != nil {
		return false, err
	}
	if len(names) > 0 {
		return false, nil
	}

	s.println(EmptyDirMessage)
	s.logger.Debug("empty working directory, redirecting to new note", "dir", s.dir)
	err = s.NewNote(ctx, "")
	s.terminated = true
	return true, err
}

func (s *Session) chooseNote(ctx context.Context) (string, error) {
	names, err := s.storage.List(s.dir, core.NoteExt)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", core.ErrNoNotes
	}
	return s.prompter.Select(ctx, "Note file to open:", names)
}

// loop is the open-note state machine. It returns nil when the note is
// left normally (quit, end of input, archive).
func (s *Session) loop(ctx context.Context, note core.NoteRef) error {
	s.depth++
	previous := s.current
	s.current = note.Path()
	defer func() {
		s.depth--
		s.current = previous
	}()

	s.logger.Debug("note opened", "path", note.Path(), "depth", s.depth)
	prompt := note.FileName() + `\Note text: `

	for !s.terminated {
		line, err := s.prompter.Input(ctx, prompt)
		if err != nil {
			if isEndOfInput(err) {
				return nil
			}
			return err
		}

		switch parseCommand(line) {
		case cmdQuit:
			return nil

		case cmdOpen:
			if err := s.settle(s.OpenNote(ctx, "")); err != nil {
				return err
			}

		case cmdNew:
			if err := s.settle(s.NewNote(ctx, "")); err != nil {
				return err
			}

		case cmdInsertImage:
			if err := s.settle(s.insertImage(ctx, note)); err != nil {
				return err
			}

		case cmdArchive:
			archived, err := s.archive(ctx, note)
			if err != nil {
				return err
			}
			if archived {
				return nil
			}

		case cmdHelp:
			PrintHelp(s.out)

		case cmdEmpty:
			s.report(core.ErrEmptyEntry)

		default:
			if err := s.settle(s.appendEntry(note, line)); err != nil {
				return err
			}
		}
	}
	return nil
}

// settle decides what an action's error means for the loop. Recoverable
// errors are reported and an interrupted or exhausted prompt only cancels
// that action; anything else is returned and ends the loop.
func (s *Session) settle(err error) error {
	switch {
	case err == nil:
		return nil
	case core.IsRecoverable(err):
		s.report(err)
		return nil
	case isEndOfInput(err):
		s.println("Cancelled")
		return nil
	}
	return err
}

func isEndOfInput(err error) bool {
	return errors.Is(err, core.ErrInterrupted) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled)
}

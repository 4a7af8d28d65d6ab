package core

import "errors"

// Fatal errors. The session returns them unchanged (or wrapped) and the
// command layer turns them into exit code 1.
var (
	ErrUsage         = errors.New("too many arguments supplied")
	ErrAlreadyExists = errors.New("file already exists")
	ErrEmptyName     = errors.New("no file name provided")
	ErrEmptyTitle    = errors.New("no title provided")
	ErrNoteNotFound  = errors.New("file does not exist")
	ErrNoNotes       = errors.New("no files found in notes folder")
)

// Recoverable errors. The open-note loop reports them and keeps prompting.
var (
	ErrMissingAsset = errors.New("image file does not exist")
	ErrEmptyEntry   = errors.New("no text provided")
)

// ErrInterrupted is returned by a Prompter when the user aborts the line
// editor (Ctrl-C) or its context is cancelled. The open-note loop treats it
// like :quit.
var ErrInterrupted = errors.New("prompt interrupted")

// IsRecoverable reports whether err can be shown to the user without
// leaving the current note.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrMissingAsset) || errors.Is(err, ErrEmptyEntry)
}

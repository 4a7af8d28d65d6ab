package session

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/sd/pkg/core"
)

// appendEntry adds text to the note under the current time, opening a new
// day-section when the note's last one is from another day. Only the
// last-date scan reads the file; the entry itself is appended.
func (s *Session) appendEntry(note core.NoteRef, text string) error {
	if text == "" {
		return core.ErrEmptyEntry
	}

	content, err := s.readNote(note)
	if err != nil {
		return err
	}

	now := s.clock()
	lastDate, ok := core.LastDate(string(content))
	block := core.FormatEntry(lastDate, ok, now, text)
	if err := s.storage.Append(note.Path(), []byte(block)); err != nil {
		return err
	}

	s.entries++
	s.logger.Debug("entry appended", "path", note.Path(), "new_day", !ok || lastDate != core.FormatDate(now))
	return nil
}

func (s *Session) readNote(note core.NoteRef) ([]byte, error) {
	exists, err := s.storage.Exists(note.Path())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", note.Path(), core.ErrNoteNotFound)
	}
	return s.storage.Read(note.Path())
}

// insertImage copies an image into the note's asset directory under a
// random name that keeps the original extension and links it from the note.
func (s *Session) insertImage(ctx context.Context, note core.NoteRef) error {
	source, err := s.prompter.Input(ctx, "Image file location: ")
	if err != nil {
		return err
	}

	isFile := false
	if source != "" {
		if isFile, err = s.storage.IsFile(source); err != nil {
			return err
		}
	}
	if !isFile {
		return fmt.Errorf("%w: %s", core.ErrMissingAsset, source)
	}

	assetName := s.assetNamer() + filepath.Ext(source)
	if err := s.storage.EnsureDir(note.AssetDir()); err != nil {
		return err
	}
	if err := s.storage.Copy(source, filepath.Join(note.AssetDir(), assetName)); err != nil {
		return err
	}
	if err := s.storage.Append(note.Path(), []byte(core.FormatImageRef(source, note, assetName))); err != nil {
		return err
	}

	s.images++
	s.logger.Debug("image inserted", "path", note.Path(), "source", source, "asset", assetName)
	return nil
}

// archive moves the note and its asset directory into the archive directory
// after confirmation. It reports whether the note was archived.
//
// An archived asset directory of the same name is refused before anything
// moves. A failure after the copy leaves the note in both places; nothing is
// rolled back.
func (s *Session) archive(ctx context.Context, note core.NoteRef) (bool, error) {
	ok, err := s.prompter.Confirm(ctx, "Are you sure you want to archive this note?")
	if err != nil {
		if isEndOfInput(err) {
			return false, nil
		}
		return false, err
	}
	if !ok {
		return false, nil
	}

	archiveDir := filepath.Join(s.dir, s.archiveDir)
	archivedAssets := filepath.Join(archiveDir, note.AssetDirName())

	hasAssets, err := s.storage.Exists(note.AssetDir())
	if err != nil {
		return false, err
	}
	if hasAssets {
		taken, err := s.storage.Exists(archivedAssets)
		if err != nil {
			return false, err
		}
		if taken {
			return false, fmt.Errorf("%s: %w", archivedAssets, core.ErrAlreadyExists)
		}
	}

	if err := s.storage.EnsureDir(archiveDir); err != nil {
		return false, err
	}
	if err := s.storage.Copy(note.Path(), filepath.Join(archiveDir, note.FileName())); err != nil {
		return false, err
	}
	if hasAssets {
		if err := s.storage.Rename(note.AssetDir(), archivedAssets); err != nil {
			return false, err
		}
	}

	if err := s.storage.Remove(note.Path()); err != nil {
		return false, err
	}

	s.archived++
	s.printf("Note archived to %s\n", archiveDir)
	s.logger.Debug("note archived", "path", note.Path(), "archive", archiveDir, "assets", hasAssets)
	return true, nil
}

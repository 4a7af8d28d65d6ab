package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/sd/pkg/core"
)

const (
	// TempFilePrefix is the prefix used for temporary atomic write files.
	// It never ends in .md so half-written notes are not listed.
	TempFilePrefix = ".sd-tmp-"
)

// writeFileAtomic stages data in a temp file next to filename and then
// publishes it. With overwrite, the temp file is renamed over filename.
// Without it, the temp file is hard-linked into place so an existing file
// is never clobbered and core.ErrAlreadyExists is returned instead.
func writeFileAtomic(filename string, data []byte, perm os.FileMode, overwrite bool) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmpFile.Name()
	defer os.Remove(tmpName)

	if err := fillTemp(tmpFile, data); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if overwrite {
		if err := os.Rename(tmpName, filename); err != nil {
			return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
		}
		return nil
	}

	if err := os.Link(tmpName, filename); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w", filename, core.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to link temp file to %s: %w", filename, err)
	}
	return nil
}

func fillTemp(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	return nil
}

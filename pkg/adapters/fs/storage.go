package fs

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/sd/pkg/core"
)

// Storage implements core.Storage on the local filesystem.
type Storage struct {
	config Config

	mu      sync.RWMutex
	writes  int
	appends int
	copies  int
	renames int
	removes int
}

// Config holds the configuration for the filesystem storage.
type Config struct {
	Logger   *slog.Logger
	DirPerm  os.FileMode // defaults to 0755
	FilePerm os.FileMode // defaults to 0644
}

// NewStorage creates a new filesystem-backed storage.
func NewStorage(config Config) *Storage {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.DirPerm == 0 {
		config.DirPerm = 0755
	}
	if config.FilePerm == 0 {
		config.FilePerm = 0644
	}
	return &Storage{config: config}
}

// EnsureDir creates path when it does not exist. The current directory is
// never created.
func (s *Storage) EnsureDir(path string) error {
	if path == "" || filepath.Clean(path) == "." {
		return nil
	}

	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("path is not a directory: %s", path)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.MkdirAll(path, s.config.DirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	s.config.Logger.Debug("directory created", "path", path)
	return nil
}

// Exists reports whether path exists.
func (s *Storage) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

// IsFile reports whether path exists and is a regular file.
func (s *Storage) IsFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.Mode().IsRegular(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

// Read returns the content of the file at path.
func (s *Storage) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Write creates or replaces path atomically.
func (s *Storage) Write(path string, data []byte) error {
	if err := writeFileAtomic(path, data, s.config.FilePerm, true); err != nil {
		return err
	}
	s.count(&s.writes)
	s.config.Logger.Debug("file written", "path", path, "bytes", len(data))
	return nil
}

// Create writes a new file atomically and fails with core.ErrAlreadyExists
// when path is already taken.
func (s *Storage) Create(path string, data []byte) error {
	if err := writeFileAtomic(path, data, s.config.FilePerm, false); err != nil {
		return err
	}
	s.count(&s.writes)
	s.config.Logger.Debug("file created", "path", path, "bytes", len(data))
	return nil
}

// Append opens path in append mode, writes data and closes it.
// The file must already exist.
func (s *Storage) Append(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	s.count(&s.appends)
	s.config.Logger.Debug("file appended", "path", path, "bytes", len(data))
	return nil
}

// Copy copies the regular file src to dst, replacing dst. A failed copy
// leaves no dst behind.
func (s *Storage) Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("failed to copy %s: not a regular file", src)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, s.config.FilePerm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if err := fillCopy(out, in); err != nil {
		os.Remove(dst)
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	s.count(&s.copies)
	s.config.Logger.Debug("file copied", "src", src, "dst", dst)
	return nil
}

// Rename moves src to dst.
func (s *Storage) Rename(src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", src, dst, err)
	}
	s.count(&s.renames)
	s.config.Logger.Debug("path renamed", "src", src, "dst", dst)
	return nil
}

// Remove deletes the file or empty directory at path.
func (s *Storage) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	s.count(&s.removes)
	s.config.Logger.Debug("path removed", "path", path)
	return nil
}

// List returns the names of the regular files directly inside dir that end
// with ext, sorted by name.
func (s *Storage) List(dir, ext string) ([]string, error) {
	names, err := doublestar.Glob(os.DirFS(dir), "*"+ext, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	sort.Strings(names)
	return names, nil
}

func fillCopy(out *os.File, in io.Reader) error {
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (s *Storage) count(field *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*field++
}

var _ core.Storage = (*Storage)(nil)

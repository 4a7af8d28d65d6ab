package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/sd/pkg/core"
)

// Follower streams the text appended to a note by other sessions.
type Follower struct {
	path   string
	logger *slog.Logger
	offset int64
}

// NewFollower creates a follower for the note file at path.
func NewFollower(path string, logger *slog.Logger) (*Follower, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Follower{path: abs, logger: logger}, nil
}

// Start watches the note and returns a channel carrying every chunk of text
// appended after Start was called. The channel is closed when ctx is done or
// the note is removed or renamed (for example by :archive).
func (f *Follower) Start(ctx context.Context) (<-chan string, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", f.path, core.ErrNoteNotFound)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", f.path, err)
	}
	f.offset = info.Size()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the parent: editors and atomic writers replace the file itself.
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(f.path), err)
	}

	out := make(chan string)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		defer watcher.Close()
		return f.run(ctx, watcher, out)
	}, lifecycle.WithErrorHandler(func(err error) {
		f.logger.Error("follower stopped", "path", f.path, "error", err)
	}))

	f.logger.Debug("following note", "path", f.path, "offset", f.offset)
	return out, nil
}

func (f *Follower) run(ctx context.Context, watcher *fsnotify.Watcher, out chan<- string) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				f.logger.Debug("note went away", "path", f.path, "op", event.Op.String())
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			chunk, err := f.readNew()
			if err != nil {
				return err
			}
			if chunk == "" {
				continue
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			f.logger.Error("fsnotify error", "error", err)
		}
	}
}

// readNew returns the bytes written past the last known offset. A file that
// shrank was replaced or truncated and is read from the start.
func (f *Follower) readNew() (string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", f.path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", f.path, err)
	}
	if info.Size() < f.offset {
		f.offset = 0
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to seek %s: %w", f.path, err)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	f.offset += int64(len(data))
	return string(data), nil
}

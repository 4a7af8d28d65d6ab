package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"
)

// Appended is the event emitted for every chunk of text added to a note.
type Appended struct {
	Path string
	Text string
}

// String returns the appended text.
func (a Appended) String() string {
	return a.Text
}

type followSource struct {
	path   string
	chunks <-chan string
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits an Appended event for each
// chunk a note follower reports for path.
func NewSource(path string, chunks <-chan string) lifecycle.Source {
	return &followSource{
		path:   path,
		chunks: chunks,
		out:    make(chan lifecycle.Event),
	}
}

func (s *followSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards chunks until they stop or ctx is done, then closes Events.
func (s *followSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case chunk, ok := <-s.chunks:
				if !ok {
					return nil
				}
				select {
				case s.out <- Appended{Path: s.path, Text: chunk}:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}

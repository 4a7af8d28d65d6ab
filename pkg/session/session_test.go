package session_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sd/pkg/adapters/fs"
	"github.com/aretw0/sd/pkg/core"
	"github.com/aretw0/sd/pkg/session"
)

// scriptedPrompter answers prompts from a fixed script, in order.
// Confirm treats "y" as yes. An exhausted script yields io.EOF.
type scriptedPrompter struct {
	answers  []string
	messages []string
	selects  int
}

func (p *scriptedPrompter) next(message string) (string, error) {
	p.messages = append(p.messages, message)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *scriptedPrompter) Input(_ context.Context, message string) (string, error) {
	a, err := p.next(message)
	return core.CleanInput(a), err
}

func (p *scriptedPrompter) Confirm(_ context.Context, message string) (bool, error) {
	a, err := p.next(message)
	return a == "y", err
}

func (p *scriptedPrompter) Select(_ context.Context, message string, choices []string) (string, error) {
	p.selects++
	return p.next(message)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type harness struct {
	dir      string
	out      *bytes.Buffer
	prompter *scriptedPrompter
	clock    *fakeClock
	session  *session.Session
}

func newHarness(t *testing.T, answers ...string) *harness {
	t.Helper()
	h := &harness{
		dir:      t.TempDir(),
		out:      &bytes.Buffer{},
		prompter: &scriptedPrompter{answers: answers},
		clock:    &fakeClock{now: time.Date(2024, time.January, 1, 15, 0, 0, 0, time.Local)},
	}
	h.session = session.New(h.dir, fs.NewStorage(fs.Config{}), h.prompter,
		session.WithOutput(h.out),
		session.WithClock(h.clock.Now),
		session.WithAssetNamer(func() string { return "asset-id" }),
	)
	return h
}

func (h *harness) write(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, name), []byte(content), 0644))
}

func (h *harness) read(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(h.dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestNewNote(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates And Opens", func(t *testing.T) {
		h := newHarness(t, "Groceries", "buy milk", ":q")
		require.NoError(t, h.session.NewNote(ctx, "todo"))

		content := h.read(t, "todo.md")
		assert.Contains(t, content, "# Groceries\n")
		assert.Contains(t, content, "Created: Monday, Jan 1, 2024\n")
		assert.True(t, strings.HasSuffix(content, "### Monday, Jan 1, 2024\n  \n#### 3:00:00 PM:  \nbuy milk\n"))
		assert.Contains(t, h.out.String(), "File created")
		assert.Contains(t, h.out.String(), "Working directory: "+h.dir)
	})

	t.Run("Prompts For Name", func(t *testing.T) {
		h := newHarness(t, `"my note"`, "Title", ":q")
		require.NoError(t, h.session.NewNote(ctx, ""))
		assert.FileExists(t, filepath.Join(h.dir, "my note.md"))
		assert.Equal(t, "Note file name: ", h.prompter.messages[0])
	})

	t.Run("Creates Working Directory", func(t *testing.T) {
		h := newHarness(t, "Title", ":q")
		dir := filepath.Join(h.dir, "nested", "notes")
		s := session.New(dir, fs.NewStorage(fs.Config{}), h.prompter, session.WithOutput(h.out))
		require.NoError(t, s.NewNote(ctx, "todo"))
		assert.FileExists(t, filepath.Join(dir, "todo.md"))
	})

	t.Run("Already Exists", func(t *testing.T) {
		h := newHarness(t, "Title")
		h.write(t, "todo.md", "# existing\n")

		err := h.session.NewNote(ctx, "todo.md")
		assert.ErrorIs(t, err, core.ErrAlreadyExists)
		assert.Equal(t, "# existing\n", h.read(t, "todo.md"))
	})

	t.Run("Empty Title", func(t *testing.T) {
		h := newHarness(t, "   ")
		err := h.session.NewNote(ctx, "todo")
		assert.ErrorIs(t, err, core.ErrEmptyTitle)
		assert.NoFileExists(t, filepath.Join(h.dir, "todo.md"))
	})

	t.Run("Empty Name", func(t *testing.T) {
		h := newHarness(t, "")
		err := h.session.NewNote(ctx, "")
		assert.ErrorIs(t, err, core.ErrEmptyName)
	})

	t.Run("Name And Name.md Resolve To Same File", func(t *testing.T) {
		h := newHarness(t, "Title", ":q", "from open", ":q")
		require.NoError(t, h.session.NewNote(ctx, "journal"))
		require.NoError(t, h.session.OpenNote(ctx, "journal.md"))

		entries, err := os.ReadDir(h.dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Contains(t, h.read(t, "journal.md"), "from open\n")
	})
}

func TestOpenNote_Entries(t *testing.T) {
	ctx := context.Background()

	t.Run("Same Day Shares Header", func(t *testing.T) {
		h := newHarness(t, "first", "second", ":q")
		h.write(t, "todo.md", "# Todo\n")
		require.NoError(t, h.session.OpenNote(ctx, "todo"))

		content := h.read(t, "todo.md")
		assert.Equal(t, 1, strings.Count(content, "### Monday, Jan 1, 2024\n"))
		assert.Equal(t, 2, strings.Count(content, "#### 3:00:00 PM:  \n"))
	})

	t.Run("Different Days Get Own Headers", func(t *testing.T) {
		h := newHarness(t, "first", ":q")
		h.write(t, "todo.md", "# Todo\n")
		require.NoError(t, h.session.OpenNote(ctx, "todo"))

		h.clock.now = h.clock.now.Add(24 * time.Hour)
		h.prompter.answers = []string{"second", ":q"}
		require.NoError(t, h.session.OpenNote(ctx, "todo"))

		content := h.read(t, "todo.md")
		first := strings.Index(content, "### Monday, Jan 1, 2024\n")
		second := strings.Index(content, "### Tuesday, Jan 2, 2024\n")
		require.NotEqual(t, -1, first)
		require.NotEqual(t, -1, second)
		assert.Less(t, first, second)
	})

	t.Run("Appends Without New Header On Same Date", func(t *testing.T) {
		h := newHarness(t, "buy milk", ":q")
		original := "# Todo\n### Monday, Jan 1, 2024\n"
		h.write(t, "todo.md", original)
		require.NoError(t, h.session.OpenNote(ctx, "todo"))

		assert.Equal(t, original+"  \n#### 3:00:00 PM:  \nbuy milk\n", h.read(t, "todo.md"))
	})

	t.Run("Empty Line Is Reported", func(t *testing.T) {
		h := newHarness(t, "", "text", ":quit")
		h.write(t, "todo.md", "# Todo\n")
		require.NoError(t, h.session.OpenNote(ctx, "todo"))

		assert.Contains(t, h.out.String(), "No text provided")
		assert.Equal(t, 1, strings.Count(h.read(t, "todo.md"), "#### "))
		assert.Contains(t, h.read(t, "todo.md"), "text\n")
	})

	t.Run("Cancelled Context Leaves Note", func(t *testing.T) {
		h := newHarness(t)
		h.write(t, "todo.md", "# Todo\n")
		s := session.New(h.dir, fs.NewStorage(fs.Config{}), cancelledPrompter{}, session.WithOutput(h.out))

		ctx, cancel := context.WithCancel(ctx)
		cancel()
		require.NoError(t, s.OpenNote(ctx, "todo"))
		assert.Equal(t, "# Todo\n", h.read(t, "todo.md"))
	})

	t.Run("Unknown Command Is Text", func(t *testing.T) {
		h := newHarness(t, ":nope", ":exit")
		h.write(t, "todo.md", "# Todo\n")
		require.NoError(t, h.session.OpenNote(ctx, "todo"))
		assert.Contains(t, h.read(t, "todo.md"), ":nope\n")
	})

	t.Run("Help", func(t *testing.T) {
		h := newHarness(t, ":h", ":q")
		h.write(t, "todo.md", "# Todo\n")
		require.NoError(t, h.session.OpenNote(ctx, "todo"))
		assert.Contains(t, h.out.String(), ":ii or :insert image")
		assert.Equal(t, "# Todo\n", h.read(t, "todo.md"))
	})

	t.Run("End Of Input Quits", func(t *testing.T) {
		h := newHarness(t, "only")
		h.write(t, "todo.md", "# Todo\n")
		require.NoError(t, h.session.OpenNote(ctx, "todo"))
		assert.Contains(t, h.read(t, "todo.md"), "only\n")
	})
}

func TestOpenNote_Selection(t *testing.T) {
	ctx := context.Background()

	t.Run("Chooses From Directory", func(t *testing.T) {
		h := newHarness(t, "b.md", "hello", ":q")
		h.write(t, "a.md", "# A\n")
		h.write(t, "b.md", "# B\n")
		require.NoError(t, h.session.OpenNote(ctx, ""))

		assert.Equal(t, 1, h.prompter.selects)
		assert.Contains(t, h.read(t, "b.md"), "hello\n")
		assert.Equal(t, "# A\n", h.read(t, "a.md"))
	})

	t.Run("Missing Note Is Fatal", func(t *testing.T) {
		h := newHarness(t)
		h.write(t, "a.md", "# A\n")
		err := h.session.OpenNote(ctx, "ghost")
		assert.ErrorIs(t, err, core.ErrNoteNotFound)
	})

	t.Run("Note Removed Mid Session Is Fatal", func(t *testing.T) {
		h := newHarness(t, "text")
		h.write(t, "a.md", "# A\n")
		h.write(t, "keep.md", "# Keep\n")

		p := &removingPrompter{scriptedPrompter: h.prompter, path: filepath.Join(h.dir, "a.md")}
		s := session.New(h.dir, fs.NewStorage(fs.Config{}), p, session.WithOutput(h.out))
		err := s.OpenNote(ctx, "a")
		assert.ErrorIs(t, err, core.ErrNoteNotFound)
	})
}

// cancelledPrompter behaves like a prompter whose context was cancelled.
type cancelledPrompter struct{}

func (cancelledPrompter) Input(ctx context.Context, _ string) (string, error) {
	return "", ctx.Err()
}

func (cancelledPrompter) Confirm(ctx context.Context, _ string) (bool, error) {
	return false, ctx.Err()
}

func (cancelledPrompter) Select(ctx context.Context, _ string, _ []string) (string, error) {
	return "", ctx.Err()
}

// removingPrompter deletes path before answering the first prompt.
type removingPrompter struct {
	*scriptedPrompter
	path    string
	removed bool
}

func (p *removingPrompter) Input(ctx context.Context, message string) (string, error) {
	if !p.removed {
		p.removed = true
		_ = os.Remove(p.path)
	}
	return p.scriptedPrompter.Input(ctx, message)
}

func TestOpenNote_EmptyDirectoryRedirect(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "first", "First", "hello", ":q")

	require.NoError(t, h.session.OpenNote(ctx, ""))

	assert.Contains(t, h.out.String(), session.EmptyDirMessage)
	assert.Zero(t, h.prompter.selects)
	assert.Contains(t, h.read(t, "first.md"), "hello\n")

	state, ok := h.session.State().(session.State)
	require.True(t, ok)
	assert.True(t, state.Terminated)
	assert.Equal(t, 1, state.Entries)
	assert.Equal(t, "storage", state.StorageType)
}

func TestOpenNote_ReusableAfterRedirect(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "first", "First", ":q")
	require.NoError(t, h.session.OpenNote(ctx, ""))

	h.prompter.answers = []string{"later entry", ":q"}
	require.NoError(t, h.session.OpenNote(ctx, "first"))

	assert.Empty(t, h.prompter.answers)
	assert.Contains(t, h.read(t, "first.md"), "later entry\n")

	state := h.session.State().(session.State)
	assert.False(t, state.Terminated)
}

func TestOpenNote_Nested(t *testing.T) {
	ctx := context.Background()

	t.Run("New From Loop", func(t *testing.T) {
		h := newHarness(t, ":n", "second", "Second", "in second", ":q", "in first", ":q")
		h.write(t, "first.md", "# First\n")
		require.NoError(t, h.session.OpenNote(ctx, "first"))

		assert.Contains(t, h.read(t, "second.md"), "in second\n")
		assert.NotContains(t, h.read(t, "second.md"), "in first")
		assert.Contains(t, h.read(t, "first.md"), "in first\n")
	})

	t.Run("Open From Loop", func(t *testing.T) {
		h := newHarness(t, ":o", "b", "in b", ":q", "in a", ":q")
		h.write(t, "a.md", "# A\n")
		h.write(t, "b.md", "# B\n")
		require.NoError(t, h.session.OpenNote(ctx, "a"))

		assert.Contains(t, h.read(t, "b.md"), "in b\n")
		assert.Contains(t, h.read(t, "a.md"), "in a\n")
		assert.NotContains(t, h.read(t, "a.md"), "in b")
	})

	t.Run("Nested Fatal Error Propagates", func(t *testing.T) {
		h := newHarness(t, ":n", "a", "never")
		h.write(t, "a.md", "# A\n")
		err := h.session.OpenNote(ctx, "a")
		assert.ErrorIs(t, err, core.ErrAlreadyExists)
	})

	t.Run("Interrupted Nested Flow Returns To Loop", func(t *testing.T) {
		h := newHarness(t)
		h.write(t, "a.md", "# A\n")
		p := &interruptingPrompter{answers: []string{":n", "", "after", ":q"}, interruptAt: 1}
		s := session.New(h.dir, fs.NewStorage(fs.Config{}), p, session.WithOutput(h.out), session.WithClock(h.clock.Now))
		require.NoError(t, s.OpenNote(ctx, "a"))

		assert.Contains(t, h.out.String(), "Cancelled")
		assert.Contains(t, h.read(t, "a.md"), "after\n")
	})
}

// interruptingPrompter returns core.ErrInterrupted for the answer at
// index interruptAt.
type interruptingPrompter struct {
	answers     []string
	interruptAt int
	calls       int
}

func (p *interruptingPrompter) Input(context.Context, string) (string, error) {
	i := p.calls
	p.calls++
	if i == p.interruptAt {
		return "", core.ErrInterrupted
	}
	if i >= len(p.answers) {
		return "", io.EOF
	}
	return p.answers[i], nil
}

func (p *interruptingPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	a, err := p.Input(ctx, message)
	return a == "y", err
}

func (p *interruptingPrompter) Select(ctx context.Context, message string, _ []string) (string, error) {
	return p.Input(ctx, message)
}

// Package prompt implements core.Prompter on top of a line editor.
//
// Interactive terminals get github.com/chzyer/readline (history, line
// editing). When readline cannot be set up, or when an explicit input
// reader is configured, a plain bufio reader is used instead.
package prompt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sahilm/fuzzy"

	"github.com/aretw0/sd/pkg/core"
)

// Prompter asks the user for input one line at a time.
type Prompter struct {
	reader LineReader
	out    io.Writer
	logger *slog.Logger
}

type options struct {
	in          io.Reader
	out         io.Writer
	historyFile string
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Prompter.
type Option func(*options)

// WithInput reads answers from r instead of the terminal. It disables
// readline.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.in = r
	}
}

// WithOutput sets where prompts and choice lists are written.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithHistoryFile persists line editor history at path.
func WithHistoryFile(path string) Option {
	return func(o *options) {
		o.historyFile = path
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a Prompter. When the line editor is unavailable it falls back
// to basic stdin input and returns the Prompter together with the error
// explaining why, so callers can report it and carry on.
func New(opts ...Option) (*Prompter, error) {
	o := &options{out: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p := &Prompter{out: o.out, logger: o.logger}
	if o.in != nil {
		p.reader = newBasicLineReader(o.in, o.out)
		return p, nil
	}
	if !readline.IsTerminal(int(os.Stdin.Fd())) {
		o.logger.Debug("stdin is not a terminal, using basic input")
		p.reader = newBasicLineReader(os.Stdin, o.out)
		return p, nil
	}

	rl, err := newReadlineReader(o.historyFile, o.out)
	if err != nil {
		p.reader = newBasicLineReader(os.Stdin, o.out)
		return p, fmt.Errorf("line editor unavailable, fallback to basic input: %w", err)
	}
	p.reader = rl
	return p, nil
}

// Close releases the line editor.
func (p *Prompter) Close() error {
	return p.reader.Close()
}

// readLine reads one line, giving up when ctx is done. A cancelled read is
// reported as core.ErrInterrupted wrapping the context error.
func (p *Prompter) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrInterrupted, err)
	}

	type result struct {
		line string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		line, err := p.reader.ReadLine(prompt)
		done <- result{line: line, err: err}
	}()

	select {
	case r := <-done:
		return r.line, r.err
	case <-ctx.Done():
		p.logger.Debug("prompt cancelled", "error", ctx.Err())
		return "", fmt.Errorf("%w: %w", core.ErrInterrupted, ctx.Err())
	}
}

// Input prompts for a line of free text.
func (p *Prompter) Input(ctx context.Context, message string) (string, error) {
	line, err := p.readLine(ctx, message)
	if err != nil {
		return "", err
	}
	return core.CleanInput(line), nil
}

// Confirm asks a yes/no question. Anything but y/yes is a no.
func (p *Prompter) Confirm(ctx context.Context, message string) (bool, error) {
	line, err := p.readLine(ctx, message+" (y/N) ")
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Select lists choices and reads the user's pick. The answer may be the
// choice number, its exact name, or a fuzzy query; the best fuzzy match wins.
func (p *Prompter) Select(ctx context.Context, message string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", core.ErrNoNotes
	}

	fmt.Fprintln(p.out, message)
	for i, choice := range choices {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, choice)
	}

	for {
		line, err := p.readLine(ctx, "> ")
		if err != nil {
			return "", err
		}

		query := core.CleanInput(line)
		if query == "" {
			continue
		}
		if choice, ok := Match(query, choices); ok {
			p.logger.Debug("choice selected", "query", query, "choice", choice)
			return choice, nil
		}
		fmt.Fprintf(p.out, "No match for %q\n", query)
	}
}

// Match resolves query against choices: an exact name (with or without the
// .md extension), a 1-based index, or the best fuzzy match.
func Match(query string, choices []string) (string, bool) {
	normalized := core.NormalizeName(query)
	for _, choice := range choices {
		if choice == query || choice == normalized {
			return choice, true
		}
	}

	if n, err := strconv.Atoi(query); err == nil {
		if n >= 1 && n <= len(choices) {
			return choices[n-1], true
		}
		return "", false
	}

	matches := fuzzy.Find(query, choices)
	if len(matches) == 0 {
		return "", false
	}
	return choices[matches[0].Index], true
}

var _ core.Prompter = (*Prompter)(nil)

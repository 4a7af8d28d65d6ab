package core

import "context"

// Storage defines the filesystem primitives the session needs.
// Adhering to this interface keeps the session loop independent of the
// underlying storage so it can be exercised against a temp dir or a fake.
type Storage interface {
	// EnsureDir creates path (and parents) when it does not exist.
	EnsureDir(path string) error

	// Exists reports whether path exists (file or directory).
	Exists(path string) (bool, error)

	// IsFile reports whether path exists and is a regular file.
	IsFile(path string) (bool, error)

	// Read returns the content of the file at path.
	Read(path string) ([]byte, error)

	// Write creates or replaces the file at path atomically.
	Write(path string, data []byte) error

	// Create writes a new file atomically. It fails with ErrAlreadyExists
	// when path is already taken.
	Create(path string, data []byte) error

	// Append writes data at the end of an existing file.
	Append(path string, data []byte) error

	// Copy copies the file src to dst, replacing dst.
	Copy(src, dst string) error

	// Rename moves src (file or directory) to dst.
	Rename(src, dst string) error

	// Remove deletes the file or empty directory at path.
	Remove(path string) error

	// List returns the names of the regular files in dir whose name ends
	// with ext, sorted.
	List(dir, ext string) ([]string, error)
}

// Prompter obtains input from the user. Implementations return
// ErrInterrupted when the user aborts and io.EOF when input is exhausted.
type Prompter interface {
	// Input prompts for a line of free text. The result is trimmed and
	// stripped of one pair of surrounding double quotes.
	Input(ctx context.Context, message string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, message string) (bool, error)

	// Select asks the user to pick one of choices.
	Select(ctx context.Context, message string, choices []string) (string, error)
}

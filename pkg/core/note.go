package core

import (
	"path/filepath"
	"strings"
)

const (
	// NoteExt is the extension every note file carries.
	NoteExt = ".md"
	// AssetDirSuffix is appended to the note name to build its asset directory.
	AssetDirSuffix = "-assets"
	// DefaultArchiveDir is the sibling directory archived notes are moved to.
	DefaultArchiveDir = "archive"
)

// NoteRef identifies a note inside a working directory.
// Name always carries the .md extension (see NormalizeName).
type NoteRef struct {
	Dir  string
	Name string
}

// NewNoteRef builds a reference for raw inside dir, normalizing the name.
func NewNoteRef(dir, raw string) NoteRef {
	return NoteRef{Dir: dir, Name: NormalizeName(raw)}
}

// FileName returns the note file name, e.g. "todo.md".
func (n NoteRef) FileName() string {
	return n.Name
}

// Stem returns the note name without the .md extension.
func (n NoteRef) Stem() string {
	return strings.TrimSuffix(n.Name, NoteExt)
}

// Path returns the note file location.
func (n NoteRef) Path() string {
	return filepath.Join(n.Dir, n.Name)
}

// AssetDirName returns the name of the note's asset directory.
func (n NoteRef) AssetDirName() string {
	return n.Stem() + AssetDirSuffix
}

// AssetDir returns the location of the note's asset directory.
func (n NoteRef) AssetDir() string {
	return filepath.Join(n.Dir, n.AssetDirName())
}

// NormalizeName trims whitespace and one pair of surrounding double quotes
// (as left behind by drag-and-drop in most terminals) and appends .md when
// it is missing. An empty input stays empty.
func NormalizeName(raw string) string {
	name := CleanInput(raw)
	if name == "" {
		return ""
	}
	if !strings.HasSuffix(name, NoteExt) {
		name += NoteExt
	}
	return name
}

// CleanInput trims surrounding whitespace and one pair of surrounding
// double quotes.
func CleanInput(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	return s
}

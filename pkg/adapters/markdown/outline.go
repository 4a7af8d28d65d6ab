// Package markdown reads the structure of note files with goldmark.
package markdown

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aretw0/sd/pkg/core"
)

// Outline summarizes a note.
type Outline struct {
	Name    string   `json:"name"`
	Title   string   `json:"title,omitempty"`
	Created string   `json:"created,omitempty"`
	Days    []string `json:"days"`
	Entries int      `json:"entries"`
	Images  int      `json:"images"`
}

// Parse builds the outline of a note. The title comes from the frontmatter,
// or from the first level-1 heading when there is none. Level-3 headings are
// day-sections and level-4 headings are entries.
func Parse(name string, content []byte) (Outline, error) {
	meta, body, err := core.SplitFrontmatter(content)
	if err != nil {
		return Outline{}, fmt.Errorf("%s: %w", name, err)
	}

	outline := Outline{
		Name:    name,
		Title:   meta.Title,
		Created: meta.Created,
		Days:    []string{},
	}

	doc := goldmark.DefaultParser().Parse(text.NewReader(body))
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			heading := strings.TrimSpace(string(node.Text(body)))
			switch node.Level {
			case 1:
				if outline.Title == "" {
					outline.Title = heading
				}
			case 3:
				outline.Days = append(outline.Days, heading)
			case 4:
				outline.Entries++
			}
		case *ast.Image:
			outline.Images++
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return Outline{}, fmt.Errorf("%s: %w", name, err)
	}

	return outline, nil
}

// Collect parses every note of dir, sorted by file name.
func Collect(storage core.Storage, dir string) ([]Outline, error) {
	names, err := storage.List(dir, core.NoteExt)
	if err != nil {
		return nil, err
	}

	outlines := make([]Outline, 0, len(names))
	for _, name := range names {
		content, err := storage.Read(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		outline, err := Parse(name, content)
		if err != nil {
			return nil, err
		}
		outlines = append(outlines, outline)
	}
	return outlines, nil
}

// LastDay returns the most recent day-section, or "" when there is none.
func (o Outline) LastDay() string {
	if len(o.Days) == 0 {
		return ""
	}
	return o.Days[len(o.Days)-1]
}

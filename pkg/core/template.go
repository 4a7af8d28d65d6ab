package core

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the metadata block written at the top of every new note.
type Frontmatter struct {
	Title   string `yaml:"title"`
	Created string `yaml:"created"`
}

const frontmatterDelimiter = "---"

// RenderTemplate produces the initial content of a note: YAML frontmatter,
// a level-1 heading with the title and the creation date. It never contains
// a day-section header, so LastDate reports none on a fresh note.
func RenderTemplate(title, date string) (string, error) {
	meta, err := yaml.Marshal(Frontmatter{Title: title, Created: date})
	if err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	var b bytes.Buffer
	b.WriteString(frontmatterDelimiter + "\n")
	b.Write(meta)
	b.WriteString(frontmatterDelimiter + "\n\n")
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Created: %s\n\n", date)
	return b.String(), nil
}

// SplitFrontmatter separates a leading YAML frontmatter block from the body.
// When content has no frontmatter, meta is zero and body is content.
func SplitFrontmatter(content []byte) (meta Frontmatter, body []byte, err error) {
	prefix := []byte(frontmatterDelimiter + "\n")
	if !bytes.HasPrefix(content, prefix) {
		return Frontmatter{}, content, nil
	}

	rest := content[len(prefix):]
	end := bytes.Index(rest, []byte("\n"+frontmatterDelimiter+"\n"))
	if end < 0 {
		return Frontmatter{}, content, nil
	}

	if err := yaml.Unmarshal(rest[:end], &meta); err != nil {
		return Frontmatter{}, content, fmt.Errorf("invalid frontmatter: %w", err)
	}
	return meta, rest[end+len(frontmatterDelimiter)+2:], nil
}

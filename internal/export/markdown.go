// Package export writes notes out as standalone markdown files with YAML
// frontmatter, one file per note.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"

	"mdnotes/internal/notes"
)

// Frontmatter is the metadata block written above each note's content.
type Frontmatter struct {
	ID      string    `yaml:"id"`
	Title   string    `yaml:"title,omitempty"`
	Tags    []string  `yaml:"tags,omitempty"`
	Created time.Time `yaml:"created"`
	Updated time.Time `yaml:"updated"`
}

// Markdown renders a note as frontmatter followed by its content.
func Markdown(n notes.Note) ([]byte, error) {
	fm := Frontmatter{
		ID:      n.ID,
		Title:   n.Title,
		Tags:    n.Tags,
		Created: time.UnixMilli(n.CreatedAt).UTC(),
		Updated: time.UnixMilli(n.UpdatedAt).UTC(),
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(fm); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	buf.WriteString("---\n")
	buf.WriteString(n.Content)
	return buf.Bytes(), nil
}

// Filename derives a stable file name: a slug of the title plus the id.
func Filename(n notes.Note) string {
	slug := slugify(n.Title)
	if slug == "" {
		return n.ID + ".md"
	}
	return slug + "-" + n.ID + ".md"
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ToDir writes every note into dir and returns the number of files written.
func ToDir(dir string, list []notes.Note) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create export dir: %w", err)
	}
	for i, n := range list {
		data, err := Markdown(n)
		if err != nil {
			return i, fmt.Errorf("export note %s: %w", n.ID, err)
		}
		if err := os.WriteFile(filepath.Join(dir, Filename(n)), data, 0o644); err != nil {
			return i, fmt.Errorf("write note %s: %w", n.ID, err)
		}
	}
	return len(list), nil
}

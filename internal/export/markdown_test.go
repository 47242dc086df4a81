package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"mdnotes/internal/notes"
)

func sampleNote() notes.Note {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC).UnixMilli()
	return notes.Note{
		ID:        "1772357400000",
		Title:     "Weekly Sync: Q2 plans",
		Content:   "# Agenda\n- budget\n",
		Tags:      []string{"meeting", "work"},
		CreatedAt: created,
		UpdatedAt: created + 60_000,
	}
}

func splitFrontmatter(t *testing.T, data []byte) (Frontmatter, string) {
	t.Helper()
	require.True(t, bytes.HasPrefix(data, []byte("---\n")))
	parts := bytes.SplitN(data[4:], []byte("---\n"), 2)
	require.Len(t, parts, 2)

	var fm Frontmatter
	require.NoError(t, yaml.Unmarshal(parts[0], &fm))
	return fm, string(parts[1])
}

func TestMarkdown(t *testing.T) {
	n := sampleNote()

	data, err := Markdown(n)
	require.NoError(t, err)

	fm, body := splitFrontmatter(t, data)
	assert.Equal(t, n.ID, fm.ID)
	assert.Equal(t, n.Title, fm.Title)
	assert.Equal(t, n.Tags, fm.Tags)
	assert.Equal(t, n.CreatedAt, fm.Created.UnixMilli())
	assert.Equal(t, n.UpdatedAt, fm.Updated.UnixMilli())
	assert.Equal(t, n.Content, body)
}

func TestFilename(t *testing.T) {
	n := sampleNote()
	assert.Equal(t, "weekly-sync-q2-plans-1772357400000.md", Filename(n))

	n.Title = "  !!  "
	assert.Equal(t, "1772357400000.md", Filename(n))
}

func TestToDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	a := sampleNote()
	b := sampleNote()
	b.ID, b.Title = "1772357400001", ""

	count, err := ToDir(dir, []notes.Note{a, b})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	data, err := os.ReadFile(filepath.Join(dir, Filename(b)))
	require.NoError(t, err)
	fm, _ := splitFrontmatter(t, data)
	assert.Equal(t, b.ID, fm.ID)
}

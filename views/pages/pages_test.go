package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdnotes/views/models"
)

func renderHome(t *testing.T, v models.HomeView) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, HomePage(v).Render(context.Background(), &b))
	return b.String()
}

func TestHomePageWithoutActiveNote(t *testing.T) {
	html := renderHome(t, models.HomeView{TotalNotes: 0})

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Markdown Notes</title>")
	assert.Contains(t, html, `<span class="count">0 notes</span>`)
	assert.Contains(t, html, "Select a note or create a new one.")
	assert.Contains(t, html, "No notes found")
	assert.True(t, strings.HasSuffix(html, "</script></body></html>"))
}

func TestHomePageWithActiveNote(t *testing.T) {
	active := models.NoteView{ID: "7", Title: "Groceries <list>", Active: true}
	html := renderHome(t, models.HomeView{
		Notes:        []models.NoteView{active},
		Active:       &active,
		Rendered:     "<p>milk</p>",
		Search:       "milk",
		SelectedTags: []string{"home"},
		TotalNotes:   1,
	})

	assert.Contains(t, html, "<title>Groceries &lt;list&gt; - Markdown Notes</title>")
	assert.Contains(t, html, `value="milk"`)
	assert.Contains(t, html, `<input type="hidden" name="tag" value="home">`)
	assert.Contains(t, html, `action="/notes/7"`)
	assert.Contains(t, html, `Highlighting: "milk"</p><p>milk</p>`)
	assert.Contains(t, html, `<li class="note-item active"><a href="/notes/7"><h3>Groceries &lt;list&gt;</h3>`)
}

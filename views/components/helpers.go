// Package components holds the HTML fragments shared by pages and HTMX
// partial responses.
package components

import (
	"strings"

	"github.com/a-h/templ"

	"mdnotes/views/models"
)

const snippetLength = 60

// Highlight escapes text and wraps case-insensitive matches of term in <mark>.
func Highlight(text, term string) string {
	lower := strings.ToLower(text)
	needle := strings.ToLower(term)
	// Lowercasing can change byte lengths for some scripts; offsets would no
	// longer line up, so skip highlighting there.
	if needle == "" || len(lower) != len(text) {
		return templ.EscapeString(text)
	}

	var b strings.Builder
	for {
		i := strings.Index(lower, needle)
		if i < 0 {
			b.WriteString(templ.EscapeString(text))
			return b.String()
		}
		b.WriteString(templ.EscapeString(text[:i]))
		b.WriteString("<mark>")
		b.WriteString(templ.EscapeString(text[i : i+len(needle)]))
		b.WriteString("</mark>")
		text, lower = text[i+len(needle):], lower[i+len(needle):]
	}
}

// Snippet returns the first snippetLength runes of content.
func Snippet(content string) string {
	r := []rune(content)
	if len(r) > snippetLength {
		r = r[:snippetLength]
	}
	return string(r)
}

func emptyMessage(filtered bool) string {
	if filtered {
		return "No notes match your search"
	}
	return "No notes found"
}

func noteTitle(n models.NoteView) string {
	if n.Title == "" {
		return "Untitled"
	}
	return n.Title
}

func noteSnippet(n models.NoteView) string {
	if s := Snippet(n.Content); s != "" {
		return s
	}
	return "No content"
}

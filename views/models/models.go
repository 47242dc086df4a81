package models

import "time"

// NoteView represents a note for template rendering
type NoteView struct {
	ID        string
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
	Active    bool
}

// TagView represents a tag chip in the sidebar filter
type TagView struct {
	Name     string
	Selected bool
	Href     string // link that toggles this tag
}

// TemplateView represents an entry in the template picker
type TemplateView struct {
	ID          string
	Name        string
	Description string
	Tags        []string
}

// ShortcutView represents a row in the keyboard help panel
type ShortcutView struct {
	Label       string
	Key         string
	Command     string
	Description string
}

// HomeView is everything the main page renders
type HomeView struct {
	Notes        []NoteView
	Tags         []TagView
	Templates    []TemplateView
	Shortcuts    []ShortcutView
	Active       *NoteView
	Rendered     string // HTML preview of the active note
	Search       string
	SelectedTags []string
	TotalNotes   int
}

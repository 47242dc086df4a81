package notes

// Note is a markdown note. Timestamps are unix milliseconds so the persisted
// blob keeps the shape {id, title, content, tags, createdAt, updatedAt}.
type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"` // markdown
	Tags      []string `json:"tags"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
}

// HasTag reports whether the note carries tag exactly.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (n Note) clone() Note {
	n.Tags = append([]string{}, n.Tags...)
	return n
}

// NoteTemplate is a predefined skeleton used to seed new notes.
type NoteTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
}

// NoteUpdate carries the fields to change on a note. Nil fields are left
// alone; a non-nil empty Tags slice clears the tags.
type NoteUpdate struct {
	Title   *string  `json:"title,omitempty"`
	Content *string  `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// Query selects notes from the collection.
type Query struct {
	Term string   // case-insensitive substring over title, content and tags
	Tags []string // every tag must be present
}

// CreateNoteInput is the input for creating a note
type CreateNoteInput struct {
	TemplateID string `json:"templateId"`
}

// TagInput is the body for adding a tag to a note.
type TagInput struct {
	Tag string `json:"tag"`
}

// PreviewInput is the body for rendering markdown. Term, when set, is
// highlighted in the output.
type PreviewInput struct {
	Content string `json:"content"`
	Term    string `json:"term,omitempty"`
}

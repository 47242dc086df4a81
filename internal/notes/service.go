package notes

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

const previewPlaceholder = "*Start writing to see the preview*"

// Service is what the HTTP handlers, MCP tools and CLI talk to. Unknown ids
// become ErrNoteNotFound here; the Store itself treats them as no-ops.
type Service struct {
	store *Store
	md    goldmark.Markdown
	now   func() time.Time
}

func NewService(store *Store) *Service {
	return &Service{
		store: store,
		md:    goldmark.New(goldmark.WithExtensions(extension.GFM, searchHighlight{})),
		now:   store.now,
	}
}

// Create creates a blank note, or one from input.TemplateID when set
func (s *Service) Create(ctx context.Context, input CreateNoteInput) (Note, error) {
	var id string
	if input.TemplateID == "" {
		id = s.store.CreateNote(ctx)
	} else {
		t, ok := TemplateByID(input.TemplateID, s.now())
		if !ok {
			return Note{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, input.TemplateID)
		}
		id = s.store.CreateNoteFromTemplate(ctx, t)
	}
	return s.GetByID(ctx, id)
}

// GetByID retrieves a note by ID
func (s *Service) GetByID(_ context.Context, id string) (Note, error) {
	n, ok := s.store.Note(id)
	if !ok {
		return Note{}, ErrNoteNotFound
	}
	return n, nil
}

// List returns the notes matching q, newest first
func (s *Service) List(_ context.Context, q Query) []Note {
	return s.store.Filter(q)
}

// Update applies a partial update and returns the updated note
func (s *Service) Update(ctx context.Context, id string, u NoteUpdate) (Note, error) {
	if !s.store.UpdateNote(ctx, id, u) {
		return Note{}, ErrNoteNotFound
	}
	return s.GetByID(ctx, id)
}

// AddTag adds a tag to the note. A tag that is blank after trimming is
// rejected with ErrTagRequired.
func (s *Service) AddTag(ctx context.Context, id, tag string) (Note, error) {
	if NormalizeTag(tag) == "" {
		return Note{}, ErrTagRequired
	}
	if !s.store.AddTag(ctx, id, tag) {
		return Note{}, ErrNoteNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *Service) RemoveTag(ctx context.Context, id, tag string) (Note, error) {
	if !s.store.RemoveTag(ctx, id, tag) {
		return Note{}, ErrNoteNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes a note by ID
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.store.DeleteNote(ctx, id) {
		return ErrNoteNotFound
	}
	return nil
}

// Select makes id the active note
func (s *Service) Select(_ context.Context, id string) {
	s.store.SelectNote(id)
}

// Active returns the active note, or false when none is active
func (s *Service) Active(_ context.Context) (Note, bool) {
	return s.store.ActiveNote()
}

// Tags returns every tag in use, sorted
func (s *Service) Tags(_ context.Context) []string {
	return s.store.AllTags()
}

// Templates returns the template catalog
func (s *Service) Templates() []NoteTemplate {
	return TemplatesAt(s.now())
}

// RenderMarkdown converts markdown content to HTML
func (s *Service) RenderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return content // Return raw content on error
	}
	return buf.String()
}

// RenderPreview renders content for the preview pane. Matches of term outside
// code are wrapped in <mark>; empty content renders a placeholder.
func (s *Service) RenderPreview(content, term string) string {
	if content == "" {
		content = previewPlaceholder
	}
	pc := parser.NewContext()
	pc.Set(highlightTermKey, term)

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf, parser.WithContext(pc)); err != nil {
		return content
	}
	return buf.String()
}

// Count returns the number of notes
func (s *Service) Count(_ context.Context) int {
	return len(s.store.Notes())
}

package notes

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"
)

// Store is the in-memory note collection, newest first, plus the active note
// pointer. Every mutation writes the full collection through the Repo before
// returning.
type Store struct {
	mu       sync.Mutex
	repo     *Repo
	notes    []Note
	activeID string
	lastID   int64
	now      func() time.Time
	log      *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock sets the time source used for ids and timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger for the store.
func WithLogger(log *slog.Logger) StoreOption {
	return func(s *Store) { s.log = log }
}

// NewStore loads the collection from repo. An empty collection is replaced by
// the welcome note, which becomes active; otherwise the first note is active.
func NewStore(ctx context.Context, repo *Repo, opts ...StoreOption) *Store {
	s := &Store{
		repo: repo,
		now:  time.Now,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.notes = repo.Load(ctx)
	for _, n := range s.notes {
		if id, err := strconv.ParseInt(n.ID, 10, 64); err == nil && id > s.lastID {
			s.lastID = id
		}
	}

	if len(s.notes) == 0 {
		welcome := DefaultNote(s.now())
		welcome.ID = s.nextID(welcome.CreatedAt)
		s.notes = []Note{welcome}
		s.activeID = welcome.ID
		s.log.Info("no saved notes, created welcome note", "id", welcome.ID)
		s.persist(ctx)
	} else {
		s.activeID = s.notes[0].ID
		s.log.Info("loaded notes", "count", len(s.notes))
	}
	return s
}

// nextID returns a creation-time id strictly greater than any issued before.
// Caller holds s.mu.
func (s *Store) nextID(ms int64) string {
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return strconv.FormatInt(ms, 10)
}

func (s *Store) persist(ctx context.Context) {
	snapshot := make([]Note, len(s.notes))
	copy(snapshot, s.notes)
	s.repo.Save(ctx, snapshot)
}

func (s *Store) indexOf(id string) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) insert(ctx context.Context, title, content string, tags []string) string {
	ms := s.now().UnixMilli()
	n := Note{
		ID:        s.nextID(ms),
		Title:     title,
		Content:   content,
		Tags:      NormalizeTags(tags),
		CreatedAt: ms,
		UpdatedAt: ms,
	}
	s.notes = append([]Note{n}, s.notes...)
	s.activeID = n.ID
	s.persist(ctx)
	return n.ID
}

// CreateNote prepends a blank note, makes it active and returns its id.
func (s *Store) CreateNote(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(ctx, "", "", nil)
}

// CreateNoteFromTemplate prepends a note seeded from t and makes it active.
// The title is the template name, except for the blank template.
func (s *Store) CreateNoteFromTemplate(ctx context.Context, t NoteTemplate) string {
	title := t.Name
	if t.Name == BlankTemplateName {
		title = ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(ctx, title, t.Content, t.Tags)
}

// SelectNote sets the active note. The id is not checked; an unknown id
// leaves no active note until another is selected.
func (s *Store) SelectNote(id string) {
	s.mu.Lock()
	s.activeID = id
	s.mu.Unlock()
}

// UpdateNote merges u into the note with id and refreshes its updatedAt.
// The note keeps its position. It reports whether the note exists.
func (s *Store) UpdateNote(ctx context.Context, id string, u NoteUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	n := &s.notes[i]
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	if u.Tags != nil {
		n.Tags = NormalizeTags(u.Tags)
	}
	s.touch(n)
	s.persist(ctx)
	return true
}

// AddTag adds a normalized tag to the note. It reports whether the note exists.
func (s *Store) AddTag(ctx context.Context, id, tag string) bool {
	return s.editTags(ctx, id, func(tags []string) ([]string, bool) { return AddTag(tags, tag) })
}

// RemoveTag removes a tag from the note. It reports whether the note exists.
func (s *Store) RemoveTag(ctx context.Context, id, tag string) bool {
	return s.editTags(ctx, id, func(tags []string) ([]string, bool) { return RemoveTag(tags, tag) })
}

func (s *Store) editTags(ctx context.Context, id string, edit func([]string) ([]string, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	n := &s.notes[i]
	tags, changed := edit(append([]string{}, n.Tags...))
	if !changed {
		return true
	}
	n.Tags = tags
	s.touch(n)
	s.persist(ctx)
	return true
}

func (s *Store) touch(n *Note) {
	ms := s.now().UnixMilli()
	if ms < n.CreatedAt {
		ms = n.CreatedAt
	}
	n.UpdatedAt = ms
}

// DeleteNote removes the note. If it was active, the first remaining note
// becomes active, or none when the collection is empty. It reports whether
// the note existed.
func (s *Store) DeleteNote(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.notes = append(s.notes[:i:i], s.notes[i+1:]...)
	if s.activeID == id {
		s.activeID = ""
		if len(s.notes) > 0 {
			s.activeID = s.notes[0].ID
		}
	}
	s.persist(ctx)
	return true
}

// AllTags returns every tag in use, sorted and deduplicated.
func (s *Store) AllTags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := make(map[string]struct{})
	for _, n := range s.notes {
		for _, t := range n.Tags {
			set[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Notes returns a copy of the collection in store order.
func (s *Store) Notes() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = n.clone()
	}
	return out
}

// Filter returns the notes matching q in store order.
func (s *Store) Filter(q Query) []Note {
	return Filter(s.Notes(), q)
}

// Note returns a copy of the note with id.
func (s *Store) Note(id string) (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Note{}, false
	}
	return s.notes[i].clone(), true
}

// ActiveID returns the active note id, or "" when none is active.
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// ActiveNote returns the active note if it exists.
func (s *Store) ActiveNote() (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeID == "" {
		return Note{}, false
	}
	i := s.indexOf(s.activeID)
	if i < 0 {
		return Note{}, false
	}
	return s.notes[i].clone(), true
}

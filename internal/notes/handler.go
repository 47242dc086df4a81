package notes

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mdnotes/internal/shortcuts"
	"mdnotes/views/components"
	"mdnotes/views/models"
	"mdnotes/views/pages"
)

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts every route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	// REST API endpoints
	mux.HandleFunc("GET /api/notes", h.ListNotes)
	mux.HandleFunc("POST /api/notes", h.CreateNote)
	mux.HandleFunc("GET /api/notes/{id}", h.GetNote)
	mux.HandleFunc("PATCH /api/notes/{id}", h.UpdateNote)
	mux.HandleFunc("DELETE /api/notes/{id}", h.DeleteNote)
	mux.HandleFunc("POST /api/notes/{id}/select", h.SelectNote)
	mux.HandleFunc("POST /api/notes/{id}/tags", h.AddTag)
	mux.HandleFunc("DELETE /api/notes/{id}/tags/{tag}", h.RemoveTag)
	mux.HandleFunc("GET /api/active", h.ActiveNote)
	mux.HandleFunc("GET /api/tags", h.ListTags)
	mux.HandleFunc("GET /api/templates", h.ListTemplates)
	mux.HandleFunc("POST /api/preview", h.Preview)

	// HTMX Web UI
	mux.HandleFunc("GET /{$}", h.HomePage)
	mux.HandleFunc("GET /notes/{id}", h.ShowNote)
	mux.HandleFunc("POST /notes", h.CreateNoteForm)
	mux.HandleFunc("POST /notes/{id}", h.SaveNoteForm)
	mux.HandleFunc("POST /notes/{id}/delete", h.DeleteNoteForm)
	mux.HandleFunc("GET /fragments/notes", h.NotesFragment)
	mux.HandleFunc("POST /fragments/preview", h.PreviewFragment)
}

// --- REST API Handlers ---

// ListNotes handles GET /api/notes?q=term&tag=a&tag=b
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.svc.List(r.Context(), queryFromRequest(r)), http.StatusOK)
}

// CreateNote handles POST /api/notes
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var input CreateNoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	note, err := h.svc.Create(r.Context(), input)
	if errors.Is(err, ErrTemplateNotFound) {
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.log.Error("failed to create note", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, note, http.StatusCreated)
}

// GetNote handles GET /api/notes/{id}
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.noteError(w, err)
		return
	}
	h.jsonResponse(w, note, http.StatusOK)
}

// UpdateNote handles PATCH /api/notes/{id}
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var u NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	note, err := h.svc.Update(r.Context(), r.PathValue("id"), u)
	if err != nil {
		h.noteError(w, err)
		return
	}
	h.jsonResponse(w, note, http.StatusOK)
}

// DeleteNote handles DELETE /api/notes/{id}
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.noteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SelectNote handles POST /api/notes/{id}/select. The id is not validated.
func (h *Handler) SelectNote(w http.ResponseWriter, r *http.Request) {
	h.svc.Select(r.Context(), r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// AddTag handles POST /api/notes/{id}/tags
func (h *Handler) AddTag(w http.ResponseWriter, r *http.Request) {
	var input TagInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	note, err := h.svc.AddTag(r.Context(), r.PathValue("id"), input.Tag)
	if err != nil {
		h.noteError(w, err)
		return
	}
	h.jsonResponse(w, note, http.StatusOK)
}

// RemoveTag handles DELETE /api/notes/{id}/tags/{tag}
func (h *Handler) RemoveTag(w http.ResponseWriter, r *http.Request) {
	note, err := h.svc.RemoveTag(r.Context(), r.PathValue("id"), r.PathValue("tag"))
	if err != nil {
		h.noteError(w, err)
		return
	}
	h.jsonResponse(w, note, http.StatusOK)
}

// ActiveNote handles GET /api/active
func (h *Handler) ActiveNote(w http.ResponseWriter, r *http.Request) {
	note, ok := h.svc.Active(r.Context())
	if !ok {
		h.jsonError(w, "no active note", http.StatusNotFound)
		return
	}
	h.jsonResponse(w, note, http.StatusOK)
}

// ListTags handles GET /api/tags
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.svc.Tags(r.Context()), http.StatusOK)
}

// ListTemplates handles GET /api/templates
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.svc.Templates(), http.StatusOK)
}

// Preview handles POST /api/preview
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var input PreviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	h.jsonResponse(w, map[string]string{"html": h.svc.RenderPreview(input.Content, input.Term)}, http.StatusOK)
}

// --- Helper methods ---

func (h *Handler) noteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoteNotFound):
		h.jsonError(w, "note not found", http.StatusNotFound)
	case errors.Is(err, ErrTagRequired):
		h.log.Warn("rejected note request", "error", err)
		h.jsonError(w, err.Error(), http.StatusBadRequest)
	default:
		h.log.Error("note request failed", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func queryFromRequest(r *http.Request) Query {
	return Query{
		Term: r.URL.Query().Get("q"),
		Tags: NormalizeTags(r.URL.Query()["tag"]),
	}
}

// platformFromRequest guesses the client platform for shortcut labels.
func platformFromRequest(r *http.Request) string {
	if strings.Contains(r.UserAgent(), "Macintosh") {
		return "darwin"
	}
	return "other"
}

// --- View model converters ---

func millis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func noteToView(n Note, activeID string) models.NoteView {
	return models.NoteView{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      n.Tags,
		CreatedAt: millis(n.CreatedAt),
		UpdatedAt: millis(n.UpdatedAt),
		Active:    n.ID == activeID,
	}
}

func (h *Handler) notesToViews(notes []Note, activeID string) []models.NoteView {
	views := make([]models.NoteView, len(notes))
	for i, n := range notes {
		views[i] = noteToView(n, activeID)
	}
	return views
}

func (h *Handler) tagsToViews(all []string, q Query) []models.TagView {
	views := make([]models.TagView, len(all))
	for i, t := range all {
		vals := url.Values{}
		if q.Term != "" {
			vals.Set("q", q.Term)
		}
		for _, sel := range ToggleTag(q.Tags, t) {
			vals.Add("tag", sel)
		}
		href := "/"
		if enc := vals.Encode(); enc != "" {
			href += "?" + enc
		}
		views[i] = models.TagView{
			Name:     t,
			Selected: contains(q.Tags, t),
			Href:     href,
		}
	}
	return views
}

func (h *Handler) templatesToViews(templates []NoteTemplate) []models.TemplateView {
	views := make([]models.TemplateView, len(templates))
	for i, t := range templates {
		views[i] = models.TemplateView{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Tags:        t.Tags,
		}
	}
	return views
}

func shortcutViews(platform string) []models.ShortcutView {
	bindings := shortcuts.DefaultBindings()
	views := make([]models.ShortcutView, len(bindings))
	for i, b := range bindings {
		views[i] = models.ShortcutView{
			Label:       shortcuts.Label(platform, b),
			Key:         b.Key,
			Command:     string(b.Command),
			Description: b.Description,
		}
	}
	return views
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// --- HTMX Web Handlers ---

// HomePage handles GET /
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := queryFromRequest(r)

	view := models.HomeView{
		Search:       q.Term,
		SelectedTags: q.Tags,
		Templates:    h.templatesToViews(h.svc.Templates()),
		Shortcuts:    shortcutViews(platformFromRequest(r)),
		Tags:         h.tagsToViews(h.svc.Tags(ctx), q),
		TotalNotes:   h.svc.Count(ctx),
	}

	active, ok := h.svc.Active(ctx)
	activeID := ""
	if ok {
		activeID = active.ID
		av := noteToView(active, activeID)
		view.Active = &av
		view.Rendered = h.svc.RenderPreview(active.Content, q.Term)
	}
	view.Notes = h.notesToViews(h.svc.List(ctx, q), activeID)

	if err := pages.HomePage(view).Render(ctx, w); err != nil {
		h.log.Error("failed to render home page", "error", err)
	}
}

// ShowNote handles GET /notes/{id}
func (h *Handler) ShowNote(w http.ResponseWriter, r *http.Request) {
	h.svc.Select(r.Context(), r.PathValue("id"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CreateNoteForm handles POST /notes
func (h *Handler) CreateNoteForm(w http.ResponseWriter, r *http.Request) {
	input := CreateNoteInput{TemplateID: r.FormValue("template")}
	if _, err := h.svc.Create(r.Context(), input); err != nil {
		h.log.Warn("failed to create note", "template", input.TemplateID, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SaveNoteForm handles POST /notes/{id}
func (h *Handler) SaveNoteForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	var u NoteUpdate
	if r.PostForm.Has("title") {
		title := r.PostForm.Get("title")
		u.Title = &title
	}
	if r.PostForm.Has("content") {
		content := r.PostForm.Get("content")
		u.Content = &content
	}
	if r.PostForm.Has("tags") {
		u.Tags = SplitTags(r.PostForm.Get("tags"))
	}

	if _, err := h.svc.Update(r.Context(), r.PathValue("id"), u); errors.Is(err, ErrNoteNotFound) {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteNoteForm handles POST /notes/{id}/delete
func (h *Handler) DeleteNoteForm(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); errors.Is(err, ErrNoteNotFound) {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// NotesFragment handles GET /fragments/notes (HTMX partial)
func (h *Handler) NotesFragment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := queryFromRequest(r)

	activeID := ""
	if active, ok := h.svc.Active(ctx); ok {
		activeID = active.ID
	}
	views := h.notesToViews(h.svc.List(ctx, q), activeID)
	filtered := q.Term != "" || len(q.Tags) > 0

	if err := components.NoteCardList(views, q.Term, filtered).Render(ctx, w); err != nil {
		h.log.Error("failed to render note list", "error", err)
	}
}

// PreviewFragment handles POST /fragments/preview (HTMX partial)
func (h *Handler) PreviewFragment(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("q")
	html := h.svc.RenderPreview(r.FormValue("content"), term)
	if err := components.Preview(html, term).Render(r.Context(), w); err != nil {
		h.log.Error("failed to render preview", "error", err)
	}
}

package notes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T) (*http.ServeMux, *testEnv) {
	t.Helper()
	env := newTestEnv(t, nil)
	log, _ := testLogger()
	mux := http.NewServeMux()
	NewHandler(NewService(env.store), log).Register(mux)
	return mux, env
}

func do(t *testing.T, mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, mux http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestAPICreateAndGet(t *testing.T) {
	mux, env := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/notes", `{"templateId":"meeting"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[Note](t, rec)
	assert.Equal(t, "Meeting Notes", created.Title)
	assert.Equal(t, []string{"meeting", "work"}, created.Tags)

	rec = do(t, mux, http.MethodGet, "/api/notes/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[Note](t, rec))

	rec = do(t, mux, http.MethodGet, "/api/active", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decode[Note](t, rec).ID)

	rec = do(t, mux, http.MethodPost, "/api/notes", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "", decode[Note](t, rec).Title)
	assert.Len(t, env.store.Notes(), 3)
}

func TestAPICreateErrors(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/notes", `{"templateId":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, mux, http.MethodPost, "/api/notes", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"error": "invalid JSON body"}, decode[map[string]string](t, rec))
}

func TestAPIUpdate(t *testing.T) {
	mux, env := newTestMux(t)
	id := env.store.ActiveID()

	rec := do(t, mux, http.MethodPatch, "/api/notes/"+id, `{"title":"Renamed","tags":["Work","work","Urgent"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[Note](t, rec)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, []string{"work", "urgent"}, got.Tags)
	assert.Contains(t, got.Content, "Welcome", "content untouched")

	rec = do(t, mux, http.MethodPatch, "/api/notes/missing", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPITags(t *testing.T) {
	mux, env := newTestMux(t)
	id := env.store.ActiveID()

	rec := do(t, mux, http.MethodPost, "/api/notes/"+id+"/tags", `{"tag":"Work"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, mux, http.MethodPost, "/api/notes/"+id+"/tags", `{"tag":"work"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"welcome", "guide", "work"}, decode[Note](t, rec).Tags)

	rec = do(t, mux, http.MethodPost, "/api/notes/"+id+"/tags", `{"tag":" "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"error": "tag is required"}, decode[map[string]string](t, rec))

	rec = do(t, mux, http.MethodPost, "/api/notes/missing/tags", `{"tag":"work"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, mux, http.MethodDelete, "/api/notes/"+id+"/tags/guide", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"welcome", "work"}, decode[Note](t, rec).Tags)

	rec = do(t, mux, http.MethodGet, "/api/tags", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"welcome", "work"}, decode[[]string](t, rec))
}

func TestAPIListFilters(t *testing.T) {
	mux, env := newTestMux(t)
	ctx := t.Context()
	a := env.store.CreateNote(ctx)
	env.store.UpdateNote(ctx, a, NoteUpdate{Title: strPtr("Launch"), Tags: []string{"work"}})
	b := env.store.CreateNote(ctx)
	env.store.UpdateNote(ctx, b, NoteUpdate{Title: strPtr("Fix outage"), Tags: []string{"work", "urgent"}})

	rec := do(t, mux, http.MethodGet, "/api/notes?tag=work&tag=urgent", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{b}, ids(decode[[]Note](t, rec)))

	rec = do(t, mux, http.MethodGet, "/api/notes?q=LAUNCH", "")
	assert.Equal(t, []string{a}, ids(decode[[]Note](t, rec)))

	rec = do(t, mux, http.MethodGet, "/api/notes", "")
	assert.Len(t, decode[[]Note](t, rec), 3)
}

func TestAPIDeleteAndSelect(t *testing.T) {
	mux, env := newTestMux(t)
	first := env.store.ActiveID()
	second := env.store.CreateNote(t.Context())

	rec := do(t, mux, http.MethodPost, "/api/notes/"+first+"/select", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, first, env.store.ActiveID())

	rec = do(t, mux, http.MethodDelete, "/api/notes/"+first, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, second, env.store.ActiveID())

	rec = do(t, mux, http.MethodGet, "/api/notes/"+first, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, mux, http.MethodDelete, "/api/notes/"+first, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	do(t, mux, http.MethodPost, "/api/notes/ghost/select", "")
	rec = do(t, mux, http.MethodGet, "/api/active", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPITemplatesAndPreview(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/templates", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]NoteTemplate](t, rec), 6)

	rec = do(t, mux, http.MethodPost, "/api/preview", `{"content":"**bold**"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p><strong>bold</strong></p>\n", decode[map[string]string](t, rec)["html"])
}

func TestHomePage(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Welcome to Markdown Notes - Markdown Notes</title>")
	assert.Contains(t, body, `<article id="preview" class="preview markdown"><h1>Welcome to Markdown Notes! 📝</h1>`)
	assert.Contains(t, body, `<li class="note-item active">`)
	assert.Contains(t, body, "Meeting Notes")
	assert.Contains(t, body, "Ctrl + N")

	rec = do(t, mux, http.MethodGet, "/?q=nomatch", "")
	assert.Contains(t, rec.Body.String(), "No notes match your search")

	rec = do(t, mux, http.MethodGet, "/missing-page", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHomePageTagLinksToggle(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/?tag=guide", "")
	body := rec.Body.String()
	assert.Contains(t, body, `<a class="tag selected" href="/">guide</a>`)
	assert.Contains(t, body, `<a class="tag" href="/?tag=guide&amp;tag=welcome">welcome</a>`)
}

func TestFormFlow(t *testing.T) {
	mux, env := newTestMux(t)
	welcome := env.store.ActiveID()

	rec := postForm(t, mux, "/notes", url.Values{"template": {"recipe"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	recipe, ok := env.store.ActiveNote()
	require.True(t, ok)
	assert.Equal(t, "Recipe", recipe.Title)

	rec = postForm(t, mux, "/notes/"+recipe.ID, url.Values{
		"title":   {"Pancakes"},
		"content": {"# Pancakes"},
		"tags":    {"Breakfast, recipe"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	got, _ := env.store.Note(recipe.ID)
	assert.Equal(t, "Pancakes", got.Title)
	assert.Equal(t, "# Pancakes", got.Content)
	assert.Equal(t, []string{"breakfast", "recipe"}, got.Tags)

	rec = do(t, mux, http.MethodGet, "/notes/"+welcome, "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, welcome, env.store.ActiveID())

	rec = postForm(t, mux, "/notes/"+recipe.ID+"/delete", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	_, ok = env.store.Note(recipe.ID)
	assert.False(t, ok)

	rec = postForm(t, mux, "/notes/"+recipe.ID, url.Values{"title": {"x"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFragments(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/fragments/notes?q=welcome", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<mark>Welcome</mark> to Markdown Notes")

	rec = do(t, mux, http.MethodGet, "/fragments/notes?tag=missing", "")
	assert.Contains(t, rec.Body.String(), "No notes match your search")

	rec = postForm(t, mux, "/fragments/preview", url.Values{"content": {"~~old~~"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `<article id="preview" class="preview markdown"><p><del>old</del></p>`+"\n</article>", rec.Body.String())
}

func TestPreviewHighlightsSearch(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := postForm(t, mux, "/fragments/preview", url.Values{"content": {"Launch notes"}, "q": {"launch"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `<article id="preview" class="preview markdown"><p class="highlighting">Highlighting: "launch"</p>`+
		`<p><mark>Launch</mark> notes</p>`+"\n</article>", rec.Body.String())

	rec = postForm(t, mux, "/fragments/preview", url.Values{"content": {""}})
	assert.Contains(t, rec.Body.String(), "<em>Start writing to see the preview</em>")

	rec = do(t, mux, http.MethodPost, "/api/preview", `{"content":"a launch","term":"LAUNCH"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>a <mark>launch</mark></p>\n", decode[map[string]string](t, rec)["html"])

	rec = do(t, mux, http.MethodGet, "/?q=markdown", "")
	body := rec.Body.String()
	assert.Contains(t, body, `Highlighting: "markdown"`)
	assert.Contains(t, body, "<h1>Welcome to <mark>Markdown</mark> Notes! 📝</h1>")
}

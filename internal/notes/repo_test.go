package notes

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdnotes/internal/storage"
)

func TestRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	log, _ := testLogger()
	repo := NewRepo(storage.NewMemory(), log)

	want := []Note{
		{ID: "3", Title: "Third", Content: "# three", Tags: []string{"work", "urgent"}, CreatedAt: 3000, UpdatedAt: 3500},
		{ID: "2", Title: "", Content: "", Tags: []string{}, CreatedAt: 2000, UpdatedAt: 2000},
		{ID: "1", Title: "First ✨", Content: "line\nline", Tags: []string{"personal"}, CreatedAt: 1000, UpdatedAt: 9000},
	}
	repo.Save(ctx, want)

	assert.Equal(t, want, repo.Load(ctx))
}

func TestRepoLoadMissing(t *testing.T) {
	log, buf := testLogger()
	repo := NewRepo(storage.NewMemory(), log)

	got := repo.Load(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, buf.String(), "a missing key is not a failure")
}

func TestRepoLoadCorrupt(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"not json", "definitely not json"},
		{"object", `{"id":"1","title":"x"}`},
		{"string", `"[]"`},
		{"null", `null`},
		{"number", `42`},
		{"truncated", `[{"id":"1"`},
		{"wrong field type", `[{"id":5,"title":"x"}]`},
		{"wrong tags type", `[{"id":"1","tags":"work"}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			kv := storage.NewMemory()
			require.NoError(t, kv.Set(ctx, StorageKey, []byte(tc.stored)))
			log, buf := testLogger()

			got := NewRepo(kv, log).Load(ctx)
			assert.NotNil(t, got)
			assert.Empty(t, got)
			assert.Contains(t, buf.String(), "failed to decode stored notes")
		})
	}
}

func TestRepoLoadEmptyValue(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(ctx, StorageKey, []byte("  ")))
	log, _ := testLogger()

	assert.Empty(t, NewRepo(kv, log).Load(ctx))
}

func TestRepoLoadBackendFailure(t *testing.T) {
	log, buf := testLogger()
	got := NewRepo(failingKV{}, log).Load(context.Background())

	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "failed to load notes")
}

func TestRepoLoadSanitizes(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	stored := `[
		{"id":"2","title":"b","content":"","tags":["Work"," work ",""],"createdAt":10,"updatedAt":5},
		{"id":"","title":"no id"},
		{"id":"2","title":"duplicate"},
		{"id":"1","title":"a"}
	]`
	require.NoError(t, kv.Set(ctx, StorageKey, []byte(stored)))
	log, _ := testLogger()

	got := NewRepo(kv, log).Load(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Title)
	assert.Equal(t, []string{"work"}, got[0].Tags)
	assert.Equal(t, int64(10), got[0].UpdatedAt)
	assert.Equal(t, "1", got[1].ID)
	assert.Equal(t, []string{}, got[1].Tags)
}

func TestRepoSaveFailureIsSwallowed(t *testing.T) {
	log, buf := testLogger()
	repo := NewRepo(failingKV{}, log)

	assert.NotPanics(t, func() { repo.Save(context.Background(), []Note{note("1", "a")}) })
	assert.Contains(t, buf.String(), "failed to save notes")
	assert.Contains(t, buf.String(), "quota exceeded")
}

func TestRepoSaveLayout(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	log, _ := testLogger()
	repo := NewRepo(kv, log)

	repo.Save(ctx, nil)
	data, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	repo.Save(ctx, []Note{{ID: "7", Title: "t", Content: "c", Tags: []string{"x"}, CreatedAt: 1, UpdatedAt: 2}})
	data, err = kv.Get(ctx, StorageKey)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, map[string]any{
		"id":        "7",
		"title":     "t",
		"content":   "c",
		"tags":      []any{"x"},
		"createdAt": float64(1),
		"updatedAt": float64(2),
	}, raw[0])
}

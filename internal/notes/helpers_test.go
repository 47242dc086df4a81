package notes

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mdnotes/internal/storage"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// failingKV fails every call, like a backend whose quota is exhausted.
type failingKV struct{}

var errQuota = errors.New("quota exceeded")

func (failingKV) Get(context.Context, string) ([]byte, error) { return nil, errQuota }
func (failingKV) Set(context.Context, string, []byte) error   { return errQuota }
func (failingKV) Close() error                                { return nil }

func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

type testEnv struct {
	kv    storage.KV
	repo  *Repo
	store *Store
	clock *fakeClock
	logs  *bytes.Buffer
}

func newTestEnv(t *testing.T, kv storage.KV) *testEnv {
	t.Helper()
	if kv == nil {
		kv = storage.NewMemory()
	}
	log, buf := testLogger()
	clock := newFakeClock()
	repo := NewRepo(kv, log)
	store := NewStore(context.Background(), repo, WithClock(clock.Now), WithLogger(log))
	return &testEnv{kv: kv, repo: repo, store: store, clock: clock, logs: buf}
}

// seed stores notes before the store is constructed.
func seed(t *testing.T, kv storage.KV, notes ...Note) {
	t.Helper()
	log, _ := testLogger()
	NewRepo(kv, log).Save(context.Background(), notes)
}

func note(id, title string, tags ...string) Note {
	if tags == nil {
		tags = []string{}
	}
	return Note{ID: id, Title: title, Content: title + " body", Tags: tags, CreatedAt: 1000, UpdatedAt: 1000}
}

func ids(notes []Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func strPtr(s string) *string { return &s }

func storedNotes(t *testing.T, kv storage.KV) []Note {
	t.Helper()
	data, err := kv.Get(context.Background(), StorageKey)
	require.NoError(t, err)
	notes, err := decodeNotes(data)
	require.NoError(t, err)
	return notes
}

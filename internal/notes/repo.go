package notes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"mdnotes/internal/storage"
)

// StorageKey is the key the whole collection is stored under.
const StorageKey = "markdown-notes"

var (
	ErrNoteNotFound     = errors.New("note not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrTagRequired      = errors.New("tag is required")

	errNotAList = errors.New("stored value is not a list")
)

// Repo reads and writes the serialized note collection. Storage failures never
// reach the caller: they are logged and the collection falls back to empty on
// load or stays in memory on save.
type Repo struct {
	kv  storage.KV
	log *slog.Logger
}

func NewRepo(kv storage.KV, log *slog.Logger) *Repo {
	if log == nil {
		log = slog.Default()
	}
	return &Repo{kv: kv, log: log}
}

// Load returns the stored notes, or an empty slice when nothing usable is stored.
func (r *Repo) Load(ctx context.Context) []Note {
	data, err := r.kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []Note{}
	}
	if err != nil {
		r.log.Error("failed to load notes", "key", StorageKey, "error", err)
		return []Note{}
	}

	notes, err := decodeNotes(data)
	if err != nil {
		r.log.Error("failed to decode stored notes", "key", StorageKey, "error", err)
		return []Note{}
	}
	return notes
}

// Save overwrites the stored collection with notes.
func (r *Repo) Save(ctx context.Context, notes []Note) {
	if notes == nil {
		notes = []Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		r.log.Error("failed to encode notes", "error", err)
		return
	}
	if err := r.kv.Set(ctx, StorageKey, data); err != nil {
		r.log.Error("failed to save notes", "key", StorageKey, "count", len(notes), "error", err)
	}
}

func decodeNotes(data []byte) ([]Note, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []Note{}, nil
	}
	if data[0] != '[' {
		return nil, errNotAList
	}

	var raw []Note
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal notes: %w", err)
	}

	notes := make([]Note, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, n := range raw {
		if n.ID == "" {
			continue
		}
		if _, ok := seen[n.ID]; ok {
			continue
		}
		seen[n.ID] = struct{}{}
		n.Tags = NormalizeTags(n.Tags)
		if n.UpdatedAt < n.CreatedAt {
			n.UpdatedAt = n.CreatedAt
		}
		notes = append(notes, n)
	}
	return notes, nil
}

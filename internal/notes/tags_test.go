package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"lowercases and trims", []string{" Work ", "URGENT"}, []string{"work", "urgent"}},
		{"drops duplicates after normalizing", []string{"Work", "work", "WORK"}, []string{"work"}},
		{"drops empty", []string{"", "  ", "a"}, []string{"a"}},
		{"keeps first-seen order", []string{"b", "a", "B"}, []string{"b", "a"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeTags(tc.in))
		})
	}
}

func TestAddTag(t *testing.T) {
	tags, changed := AddTag([]string{}, "Work")
	assert.True(t, changed)
	assert.Equal(t, []string{"work"}, tags)

	tags, changed = AddTag(tags, "work")
	assert.False(t, changed)
	assert.Equal(t, []string{"work"}, tags)

	tags, changed = AddTag(tags, "   ")
	assert.False(t, changed)
	assert.Equal(t, []string{"work"}, tags)
}

func TestRemoveTag(t *testing.T) {
	tags, changed := RemoveTag([]string{"work", "urgent"}, "Work")
	assert.True(t, changed)
	assert.Equal(t, []string{"urgent"}, tags)

	_, changed = RemoveTag(tags, "missing")
	assert.False(t, changed)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"meeting", "work"}, SplitTags("Meeting, work,, WORK"))
	assert.Equal(t, []string{}, SplitTags("  "))
}

package shortcuts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBindings(t *testing.T) {
	want := map[string]Command{
		"n": NewNote,
		"s": Save,
		"f": FocusSearch,
		"/": ToggleSidebar,
		"d": ToggleTheme,
	}

	bindings := DefaultBindings()
	assert.Len(t, bindings, len(want))
	seen := map[string]bool{}
	for _, b := range bindings {
		assert.False(t, seen[b.Key], "key %q bound twice", b.Key)
		seen[b.Key] = true
		assert.Equal(t, want[b.Key], b.Command, b.Key)
		assert.NotEmpty(t, b.Description)
	}
}

func TestModifier(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{"darwin", "Cmd"},
		{"MacIntel", "Cmd"},
		{"linux", "Ctrl"},
		{"Win32", "Ctrl"},
		{"", "Ctrl"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Modifier(tc.platform), tc.platform)
	}
}

func TestLabel(t *testing.T) {
	bindings := DefaultBindings()
	assert.Equal(t, "Cmd + N", Label("darwin", bindings[0]))
	assert.Equal(t, "Ctrl + N", Label("linux", bindings[0]))
	assert.Equal(t, "Ctrl + /", Label("linux", bindings[3]))
}

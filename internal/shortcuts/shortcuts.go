// Package shortcuts maps modifier+key presses to editor commands. The core
// store never sees these; the UI turns a command into a store call or a pure
// presentation change.
package shortcuts

import "strings"

// Command is an editor action bound to a key.
type Command string

const (
	NewNote       Command = "new-note"
	Save          Command = "save" // notes autosave, so this only acknowledges
	FocusSearch   Command = "focus-search"
	ToggleSidebar Command = "toggle-sidebar"
	ToggleTheme   Command = "toggle-theme"
)

// Binding pairs a key (pressed with the platform modifier) with a command.
type Binding struct {
	Key         string
	Command     Command
	Description string
}

// DefaultBindings returns the key bindings in display order.
func DefaultBindings() []Binding {
	return []Binding{
		{Key: "n", Command: NewNote, Description: "Create new note"},
		{Key: "s", Command: Save, Description: "Save note (auto-saves anyway)"},
		{Key: "f", Command: FocusSearch, Description: "Focus search"},
		{Key: "/", Command: ToggleSidebar, Description: "Toggle sidebar"},
		{Key: "d", Command: ToggleTheme, Description: "Toggle dark mode"},
	}
}

// Modifier names the modifier key for platform: Cmd on macOS, Ctrl elsewhere.
// platform is a GOOS value or a browser navigator.platform string.
func Modifier(platform string) string {
	if isMac(platform) {
		return "Cmd"
	}
	return "Ctrl"
}

func isMac(platform string) bool {
	p := strings.ToLower(platform)
	return p == "darwin" || strings.Contains(p, "mac")
}

// Label renders a binding for help text, e.g. "Ctrl + N".
func Label(platform string, b Binding) string {
	return Modifier(platform) + " + " + strings.ToUpper(b.Key)
}

package notes

import "strings"

// Filter returns the notes matching both the search term and every selected
// tag, in their original order.
func Filter(notes []Note, q Query) []Note {
	term := strings.ToLower(q.Term)
	selected := NormalizeTags(q.Tags)

	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if matchesTerm(n, term) && hasAllTags(n, selected) {
			out = append(out, n)
		}
	}
	return out
}

func matchesTerm(n Note, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(n.Title), term) ||
		strings.Contains(strings.ToLower(n.Content), term) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

func hasAllTags(n Note, tags []string) bool {
	for _, t := range tags {
		if !n.HasTag(t) {
			return false
		}
	}
	return true
}

// ToggleTag adds tag to the selection, or removes it if already selected.
func ToggleTag(selected []string, tag string) []string {
	tag = NormalizeTag(tag)
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, t := range selected {
		if t == tag {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found && tag != "" {
		out = append(out, tag)
	}
	return out
}

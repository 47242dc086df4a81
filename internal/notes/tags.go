package notes

import "strings"

// NormalizeTag trims and lowercases a tag. The result may be empty.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// NormalizeTags normalizes every tag and drops empty entries and duplicates,
// keeping the first occurrence's position. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = NormalizeTag(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// AddTag appends tag to tags if it is non-empty after normalization and not
// already present. It reports whether tags changed.
func AddTag(tags []string, tag string) ([]string, bool) {
	tag = NormalizeTag(tag)
	if tag == "" {
		return tags, false
	}
	for _, t := range tags {
		if t == tag {
			return tags, false
		}
	}
	return append(tags, tag), true
}

// RemoveTag drops tag from tags. It reports whether tags changed.
func RemoveTag(tags []string, tag string) ([]string, bool) {
	tag = NormalizeTag(tag)
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out, len(out) != len(tags)
}

// SplitTags parses a comma separated list as typed into a tag input.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return NormalizeTags(strings.Split(s, ","))
}

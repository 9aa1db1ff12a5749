package essay

import "strings"

// Query narrows an essay list. Zero values and the "All X" sentinels mean no
// filter on that field. Search matches title or content, case-insensitively.
type Query struct {
	College string
	Prompt  string
	Major   string
	Search  string
}

func wildcard(v, sentinel string) bool {
	return v == "" || strings.EqualFold(v, sentinel)
}

// FilterEssays applies q to an already-fetched list. Predicates combine with
// logical AND.
func FilterEssays(essays []Essay, q Query) []Essay {
	out := make([]Essay, 0, len(essays))
	search := strings.ToLower(strings.TrimSpace(q.Search))

	for _, e := range essays {
		if !wildcard(q.College, AllColleges) && !strings.EqualFold(e.College, q.College) {
			continue
		}
		if !wildcard(q.Prompt, AllPrompts) && !strings.EqualFold(e.Prompt, q.Prompt) {
			continue
		}
		if !wildcard(q.Major, AllMajors) && !strings.EqualFold(e.Major, q.Major) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.Content), search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

package essay

import "testing"

func sampleEssays() []Essay {
	return []Essay{
		{Title: "Why I Build Robots", College: "MIT", Major: "Computer Science", Prompt: "Academic Interest / Why Major", Content: "I spent my summers soldering."},
		{Title: "Letters From My Grandmother", College: "Yale University", Major: "History", Prompt: "Identity/Background", Content: "Family history shaped me."},
		{Title: "Debugging My Identity", College: "MIT", Major: "History", Prompt: "Identity/Background", Content: "Code and culture intertwined."},
	}
}

func titles(es []Essay) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Title
	}
	return out
}

func TestFilterEssays_CollegeEquality(t *testing.T) {
	got := FilterEssays(sampleEssays(), Query{College: "MIT"})
	if len(got) != 2 {
		t.Fatalf("got %d essays %v, want 2", len(got), titles(got))
	}
	for _, e := range got {
		if e.College != "MIT" {
			t.Errorf("unexpected college %q", e.College)
		}
	}
}

func TestFilterEssays_SentinelsMeanNoFilter(t *testing.T) {
	all := sampleEssays()

	for _, q := range []Query{
		{},
		{College: AllColleges, Prompt: AllPrompts, Major: AllMajors},
	} {
		got := FilterEssays(all, q)
		if len(got) != len(all) {
			t.Errorf("query %+v filtered to %d essays, want %d", q, len(got), len(all))
		}
	}
}

func TestFilterEssays_SearchCaseInsensitive(t *testing.T) {
	// matches "History" in a title and "history" in a content body
	got := FilterEssays(sampleEssays(), Query{Search: "HISTORY"})
	if len(got) != 1 {
		t.Fatalf("got %v, want just the grandmother essay", titles(got))
	}
	if got[0].Title != "Letters From My Grandmother" {
		t.Errorf("got %q", got[0].Title)
	}
}

func TestFilterEssays_SearchMatchesTitleOrContent(t *testing.T) {
	got := FilterEssays(sampleEssays(), Query{Search: "debugging"})
	if len(got) != 1 || got[0].Title != "Debugging My Identity" {
		t.Fatalf("title match failed: %v", titles(got))
	}

	got = FilterEssays(sampleEssays(), Query{Search: "soldering"})
	if len(got) != 1 || got[0].Title != "Why I Build Robots" {
		t.Fatalf("content match failed: %v", titles(got))
	}
}

func TestFilterEssays_PredicatesAreANDed(t *testing.T) {
	got := FilterEssays(sampleEssays(), Query{College: "MIT", Major: "History"})
	if len(got) != 1 || got[0].Title != "Debugging My Identity" {
		t.Fatalf("got %v, want only the MIT history essay", titles(got))
	}

	got = FilterEssays(sampleEssays(), Query{College: "Yale University", Major: "Computer Science"})
	if len(got) != 0 {
		t.Fatalf("got %v, want none", titles(got))
	}
}

func TestFilterEssays_EmptyInput(t *testing.T) {
	if got := FilterEssays(nil, Query{College: "MIT"}); len(got) != 0 {
		t.Errorf("got %d essays from nil input", len(got))
	}
}

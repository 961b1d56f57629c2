package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"reddit-persona/internal/persona"
)

func TestRoundTrip(t *testing.T) {
	p := samplePersona(t)
	now := time.Now()
	content, err := Render(Build(p, now))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	tmp := t.TempDir()
	path := filepath.Join(tmp, Filename(p.Account.Username))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	sum, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}

	wantInterests := persona.TopCategories(p.Interests, 5)
	if len(sum.Interests) != len(wantInterests) {
		t.Fatalf("parsed %d interests, want %d", len(sum.Interests), len(wantInterests))
	}
	for i, f := range sum.Interests {
		if f.Name != wantInterests[i].Category {
			t.Errorf("interest[%d] = %q, want %q", i, f.Name, wantInterests[i].Category)
		}
		if f.Citations != len(wantInterests[i].Citations) {
			t.Errorf("interest[%d] citations = %d, want %d", i, f.Citations, len(wantInterests[i].Citations))
		}
	}

	wantSubs := persona.TopCounts(p.Subreddits, 5)
	if len(sum.Subreddits) != len(wantSubs) {
		t.Fatalf("parsed %d subreddits, want %d", len(sum.Subreddits), len(wantSubs))
	}
	for i, s := range sum.Subreddits {
		if s.Name != wantSubs[i].Name || s.Count != wantSubs[i].Count {
			t.Errorf("subreddit[%d] = %s/%d, want %s/%d", i, s.Name, s.Count, wantSubs[i].Name, wantSubs[i].Count)
		}
	}
}

func TestParseEmptyReport(t *testing.T) {
	p := samplePersona(t)
	p.Interests = persona.NewCitations()
	p.Subreddits = persona.NewCounter()
	content, err := Render(Build(p, time.Now()))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	tmp := t.TempDir()
	path := filepath.Join(tmp, "empty.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	sum, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if len(sum.Interests) != 0 || len(sum.Subreddits) != 0 {
		t.Errorf("expected empty summary, got %+v", sum)
	}
}

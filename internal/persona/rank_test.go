package persona

import (
	"reflect"
	"testing"
)

func TestTopCategoriesStableTies(t *testing.T) {
	c := NewCitations()
	add := func(cat string, n int) {
		for i := 0; i < n; i++ {
			c.Add(cat, "https://reddit.com/x")
		}
	}
	add("a", 3)
	add("b", 3)
	add("c", 5)

	got := TopCategories(c, 5)
	var names []string
	for _, rc := range got {
		names = append(names, rc.Category)
	}
	// Ties break by first-seen order: a before b.
	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("rank order = %v, want %v", names, want)
	}
}

func TestTopCategoriesLimit(t *testing.T) {
	c := NewCitations()
	for _, cat := range []string{"a", "b", "c", "d", "e", "f"} {
		c.Add(cat, "https://reddit.com/x")
	}
	if got := len(TopCategories(c, 5)); got != 5 {
		t.Errorf("len = %d, want 5", got)
	}
}

func TestTopCountsStableTies(t *testing.T) {
	c := NewCounter()
	inc := func(key string, n int) {
		for i := 0; i < n; i++ {
			c.Inc(key)
		}
	}
	inc("golang", 2)
	inc("movies", 2)
	inc("askreddit", 7)

	got := TopCounts(c, 5)
	want := []RankedCount{
		{Name: "askreddit", Count: 7},
		{Name: "golang", Count: 2},
		{Name: "movies", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopCounts = %v, want %v", got, want)
	}
}

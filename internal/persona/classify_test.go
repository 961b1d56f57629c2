package persona

import (
	"reflect"
	"testing"
)

func TestClassifyCommentScenario(t *testing.T) {
	body := "I think Python is great! Thanks for the help"
	interests, traits := ClassifyComment(body)

	wantInterests := []string{InterestProgramming}
	if !reflect.DeepEqual(interests, wantInterests) {
		t.Errorf("interests = %v, want %v", interests, wantInterests)
	}
	wantTraits := []string{TraitOpinionated, TraitPolite}
	if !reflect.DeepEqual(traits, wantTraits) {
		t.Errorf("traits = %v, want %v", traits, wantTraits)
	}

	ls := languageOf(body)
	if ls.Exclamations != 1 {
		t.Errorf("exclamations = %d, want 1", ls.Exclamations)
	}
	// "i think" contains a bare "i" but none of i'm/i am/me/my.
	if ls.SelfReferences != 0 {
		t.Errorf("self references = %d, want 0", ls.SelfReferences)
	}
	if ls.WordCount != 9 {
		t.Errorf("word count = %d, want 9", ls.WordCount)
	}
}

func TestClassifyPostScenario(t *testing.T) {
	interests, traits := ClassifyPost("Need advice: what laptop should I buy?", "")

	wantInterests := []string{InterestHelpSeeking}
	if !reflect.DeepEqual(interests, wantInterests) {
		t.Errorf("interests = %v, want %v", interests, wantInterests)
	}
	wantTraits := []string{TraitInquisitive}
	if !reflect.DeepEqual(traits, wantTraits) {
		t.Errorf("traits = %v, want %v", traits, wantTraits)
	}
}

func TestClassifyPostQuestionInSelfTextOnly(t *testing.T) {
	// The inquisitive trait looks at the title only.
	_, traits := ClassifyPost("Laptop thread", "what should I buy?")
	if len(traits) != 0 {
		t.Errorf("traits = %v, want none", traits)
	}
}

func TestClassifyNoNegationHandling(t *testing.T) {
	// Substring matching has no negation handling; this still tags gaming.
	interests, _ := ClassifyComment("I don't like games")
	want := []string{InterestGaming}
	if !reflect.DeepEqual(interests, want) {
		t.Errorf("interests = %v, want %v", interests, want)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	bodies := []string{
		"I think Python is great! Thanks for the help",
		"watched a movie on netflix yesterday",
		"what time is it?",
		"",
	}
	for _, body := range bodies {
		i1, t1 := ClassifyComment(body)
		i2, t2 := ClassifyComment(body)
		if !reflect.DeepEqual(i1, i2) || !reflect.DeepEqual(t1, t2) {
			t.Errorf("classification of %q not idempotent: (%v,%v) vs (%v,%v)", body, i1, t1, i2, t2)
		}
	}
}

func TestSelfReferenceWholeWords(t *testing.T) {
	cases := []struct {
		body string
		want int
	}{
		{"my keyboard broke", 1},
		{"i'm done", 1},
		{"i am done", 1},
		{"tell me more", 1},
		{"i like it", 0},    // bare "i" does not count
		{"empathy wins", 0}, // "my" inside a word does not count
		{"memento mori", 0}, // "me" inside a word does not count
	}
	for _, tc := range cases {
		if got := languageOf(tc.body).SelfReferences; got != tc.want {
			t.Errorf("languageOf(%q).SelfReferences = %d, want %d", tc.body, got, tc.want)
		}
	}
}

func TestRuleFiresAtMostOncePerItem(t *testing.T) {
	// Two triggers of the same rule still tag the category once.
	interests, _ := ClassifyComment("python and javascript are both fine")
	want := []string{InterestProgramming}
	if !reflect.DeepEqual(interests, want) {
		t.Errorf("interests = %v, want %v", interests, want)
	}
}

package persona

import (
	"regexp"
	"strings"
)

// Interest and trait category names. The key set per dimension is fixed;
// the rule tables below are the only place new categories can come from.
const (
	InterestProgramming = "programming"
	InterestGaming      = "gaming"
	InterestMovies      = "movies"
	InterestHelpSeeking = "help_seeking"
	InterestDiscussions = "discussions"

	TraitOpinionated = "opinionated"
	TraitInquisitive = "inquisitive"
	TraitPolite      = "polite"
)

// keywordRule tags a category when any trigger phrase appears in the
// lowercased text. Matching is plain substring containment: no
// tokenization, stemming, or negation handling, so "I don't like games"
// still tags gaming. That imprecision is part of the heuristic's contract.
type keywordRule struct {
	category string
	triggers []string
}

var commentInterestRules = []keywordRule{
	{category: InterestProgramming, triggers: []string{"python", "javascript", "java", "c++"}},
	{category: InterestGaming, triggers: []string{"game", "gaming", "playstation", "xbox"}},
	{category: InterestMovies, triggers: []string{"movie", "film", "netflix", "hbo"}},
}

var postInterestRules = []keywordRule{
	{category: InterestHelpSeeking, triggers: []string{"help", "advice", "suggestion"}},
	{category: InterestDiscussions, triggers: []string{"discussion", "debate", "opinion"}},
}

var traitKeywordRules = []keywordRule{
	{category: TraitOpinionated, triggers: []string{"i think", "in my opinion"}},
	{category: TraitPolite, triggers: []string{"thanks", "thank you", "appreciate"}},
}

// selfReferenceRe matches first-person markers as whole words. Bare "i"
// deliberately does not count.
var selfReferenceRe = regexp.MustCompile(`\b(i'm|i am|me|my)\b`)

func (r keywordRule) matches(text string) bool {
	for _, t := range r.triggers {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func applyRules(rules []keywordRule, text string) []string {
	var out []string
	for _, r := range rules {
		if r.matches(text) {
			out = append(out, r.category)
		}
	}
	return out
}

// ClassifyComment tags a comment body with interest and trait categories.
// Each rule fires at most once per item; an item may match zero, one, or
// several categories.
func ClassifyComment(body string) (interests, traits []string) {
	text := strings.ToLower(body)
	interests = applyRules(commentInterestRules, text)
	traits = applyRules(traitKeywordRules, text)
	if strings.Contains(text, "?") {
		traits = append(traits, TraitInquisitive)
	}
	return interests, traits
}

// ClassifyPost tags a post with interest and trait categories. Interests
// consider the title and self text together; the inquisitive trait looks
// at the title only.
func ClassifyPost(title, selfText string) (interests, traits []string) {
	text := strings.ToLower(title + " " + selfText)
	interests = applyRules(postInterestRules, text)
	if strings.Contains(strings.ToLower(title), "?") {
		traits = append(traits, TraitInquisitive)
	}
	return interests, traits
}

// languageOf computes one comment's contribution to the language-style
// counters.
func languageOf(body string) LanguageStats {
	text := strings.ToLower(body)
	ls := LanguageStats{WordCount: len(strings.Fields(text))}
	if strings.Contains(text, "!") {
		ls.Exclamations = 1
	}
	if selfReferenceRe.MatchString(text) {
		ls.SelfReferences = 1
	}
	return ls
}

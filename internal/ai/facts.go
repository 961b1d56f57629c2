package ai

import (
	"reddit-persona/internal/persona"
)

// FactsFromPersona extracts the narrator's input from a built persona:
// ranked interest and subreddit names, all traits, and the busiest
// activity bucket.
func FactsFromPersona(p *persona.Persona) Facts {
	f := Facts{Username: p.Account.Username}
	for _, rc := range persona.TopCategories(p.Interests, 5) {
		f.TopInterests = append(f.TopInterests, rc.Category)
	}
	f.Traits = append(f.Traits, p.Traits.Categories()...)
	for _, rc := range persona.TopCounts(p.Subreddits, 5) {
		f.TopSubreddits = append(f.TopSubreddits, rc.Name)
	}
	best := 0
	for _, b := range persona.BucketOrder {
		if p.Activity[b] > best {
			best = p.Activity[b]
			f.MostActive = string(b)
		}
	}
	return f
}

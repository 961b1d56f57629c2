package persona

import (
	"time"

	"reddit-persona/internal/model"
)

// Builder accumulates classified activity into a Persona. Feed it the
// full comment sequence first, then posts, matching fetch order so that
// citation lists stay chronological.
type Builder struct {
	p *Persona
}

func NewBuilder(acct model.Account) *Builder {
	return &Builder{p: &Persona{
		Account:    acct,
		Interests:  NewCitations(),
		Traits:     NewCitations(),
		Subreddits: NewCounter(),
		Activity: map[TimeBucket]int{
			Morning:   0,
			Afternoon: 0,
			Evening:   0,
			Night:     0,
		},
	}}
}

// AddComment classifies one comment and folds it into every dimension:
// citations, subreddit count, time bucket, and language counters.
func (b *Builder) AddComment(c model.Comment) {
	interests, traits := ClassifyComment(c.Body)
	for _, cat := range interests {
		b.p.Interests.Add(cat, c.Permalink)
	}
	for _, cat := range traits {
		b.p.Traits.Add(cat, c.Permalink)
	}
	b.p.Subreddits.Inc(c.Subreddit)
	b.p.Activity[BucketOf(c.CreatedAt)]++

	ls := languageOf(c.Body)
	b.p.Language.WordCount += ls.WordCount
	b.p.Language.Exclamations += ls.Exclamations
	b.p.Language.SelfReferences += ls.SelfReferences
	b.p.Comments++
}

// AddPost classifies one post. Posts count toward subreddits and time
// buckets but not language style.
func (b *Builder) AddPost(p model.Post) {
	interests, traits := ClassifyPost(p.Title, p.SelfText)
	for _, cat := range interests {
		b.p.Interests.Add(cat, p.Permalink)
	}
	for _, cat := range traits {
		b.p.Traits.Add(cat, p.Permalink)
	}
	b.p.Subreddits.Inc(p.Subreddit)
	b.p.Activity[BucketOf(p.CreatedAt)]++
	b.p.Posts++
}

// Build finalizes the persona. The builder must not be reused after.
func (b *Builder) Build(now time.Time) *Persona {
	b.p.GeneratedAt = now
	return b.p
}

// FromActivity builds a persona from a fetched activity batch: comments
// first, then posts.
func FromActivity(act model.Activity, now time.Time) *Persona {
	b := NewBuilder(act.Account)
	for _, c := range act.Comments {
		b.AddComment(c)
	}
	for _, p := range act.Posts {
		b.AddPost(p)
	}
	return b.Build(now)
}

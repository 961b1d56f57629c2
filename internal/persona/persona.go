// Package persona turns a batch of fetched Reddit activity into a
// categorized, ranked summary. The whole pipeline is deterministic:
// classification is substring membership over lowercased text, and every
// collection type here preserves first-seen order so that ranking ties
// break the same way on every run.
package persona

import (
	"time"

	"reddit-persona/internal/model"
)

// TimeBucket is one of four fixed times of day used to summarize
// posting habits.
type TimeBucket string

const (
	Morning   TimeBucket = "morning"
	Afternoon TimeBucket = "afternoon"
	Evening   TimeBucket = "evening"
	Night     TimeBucket = "night"
)

// BucketOrder is the reporting order for activity buckets.
var BucketOrder = []TimeBucket{Morning, Afternoon, Evening, Night}

// Citations maps a category to the permalinks that triggered it.
// Category order is first-seen; citation order within a category is the
// order items were aggregated in.
type Citations struct {
	order      []string
	byCategory map[string][]string
}

func NewCitations() *Citations {
	return &Citations{byCategory: map[string][]string{}}
}

// Add appends a citation under a category, registering the category on
// first use.
func (c *Citations) Add(category, permalink string) {
	if _, ok := c.byCategory[category]; !ok {
		c.order = append(c.order, category)
	}
	c.byCategory[category] = append(c.byCategory[category], permalink)
}

// Categories returns category names in first-seen order.
func (c *Citations) Categories() []string {
	return c.order
}

// Get returns the citation list for a category (nil if never seen).
func (c *Citations) Get(category string) []string {
	return c.byCategory[category]
}

// Count returns the number of citations under a category.
func (c *Citations) Count(category string) int {
	return len(c.byCategory[category])
}

// Len returns the number of distinct categories seen.
func (c *Citations) Len() int {
	return len(c.order)
}

// Counter counts occurrences per key, remembering first-seen key order.
type Counter struct {
	order  []string
	counts map[string]int
}

func NewCounter() *Counter {
	return &Counter{counts: map[string]int{}}
}

// Inc increments the count for a key, registering it on first use.
func (c *Counter) Inc(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// Keys returns keys in first-seen order.
func (c *Counter) Keys() []string {
	return c.order
}

// Get returns the count for a key (zero if never seen).
func (c *Counter) Get(key string) int {
	return c.counts[key]
}

// LanguageStats holds the running language-style counters. They
// accumulate from comment bodies only.
type LanguageStats struct {
	WordCount      int
	Exclamations   int
	SelfReferences int
}

// Persona is the aggregate result for one account. It is built once per
// run and never mutated after rendering.
type Persona struct {
	Account     model.Account
	Interests   *Citations
	Traits      *Citations
	Subreddits  *Counter
	Activity    map[TimeBucket]int
	Language    LanguageStats
	Comments    int
	Posts       int
	GeneratedAt time.Time
}

// TotalActivity returns the number of aggregated items across all
// time buckets.
func (p *Persona) TotalActivity() int {
	total := 0
	for _, b := range BucketOrder {
		total += p.Activity[b]
	}
	return total
}

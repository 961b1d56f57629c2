// Package report renders a Persona into the fixed plain-text layout and
// can parse that layout back into a summary. Rendering is pure
// formatting: all decisions (ranking, truncation, division guards)
// happen while building the template data.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
	"time"
	"unicode"

	"reddit-persona/internal/persona"
)

const (
	maxInterests      = 5
	maxSubreddits     = 5
	interestCitations = 3
	traitCitations    = 2

	// FilenamePrefix is the fixed prefix of written report files.
	FilenamePrefix = "reddit_persona"
)

// Section is one interest or trait entry with its visible citations.
type Section struct {
	Title     string
	Total     int
	Citations []string
}

// ActivityLine is one non-empty time bucket with its share of activity.
type ActivityLine struct {
	Bucket  string
	Percent string
}

// Subreddit is one frequently visited subreddit.
type Subreddit struct {
	Name  string
	Count int
}

// Data is everything the template consumes.
type Data struct {
	Username        string
	AccountAge      string
	CommentKarma    int
	PostKarma       int
	Premium         bool
	Moderator       bool
	Interests       []Section
	Traits          []Section
	Activity        []ActivityLine
	AvgCommentWords string
	Exclamations    bool
	SelfReferences  bool
	Subreddits      []Subreddit
	Narrative       string
}

//go:embed report.tmpl
var reportTpl string

var compiled = template.Must(template.New("report").Parse(reportTpl))

// Build reduces a persona to template data. Zero-activity personas
// produce empty sections rather than division errors.
func Build(p *persona.Persona, now time.Time) Data {
	d := Data{
		Username:     p.Account.Username,
		AccountAge:   accountAge(p.Account.CreatedAt, now),
		CommentKarma: p.Account.CommentKarma,
		PostKarma:    p.Account.LinkKarma,
		Premium:      p.Account.IsGold,
		Moderator:    p.Account.IsMod,
	}

	for _, rc := range persona.TopCategories(p.Interests, maxInterests) {
		d.Interests = append(d.Interests, Section{
			Title:     capitalize(rc.Category),
			Total:     len(rc.Citations),
			Citations: truncate(rc.Citations, interestCitations),
		})
	}
	// Traits are reported in full, unranked, in first-seen order.
	for _, cat := range p.Traits.Categories() {
		urls := p.Traits.Get(cat)
		d.Traits = append(d.Traits, Section{
			Title:     capitalize(cat),
			Total:     len(urls),
			Citations: truncate(urls, traitCitations),
		})
	}

	if total := p.TotalActivity(); total > 0 {
		for _, b := range persona.BucketOrder {
			count := p.Activity[b]
			if count == 0 {
				continue
			}
			pct := float64(count) / float64(total) * 100
			d.Activity = append(d.Activity, ActivityLine{
				Bucket:  string(b),
				Percent: fmt.Sprintf("%.1f", pct),
			})
		}
	}

	if p.Comments > 0 && p.Language.WordCount > 0 {
		avg := float64(p.Language.WordCount) / float64(p.Comments)
		d.AvgCommentWords = fmt.Sprintf("%.1f", avg)
	}
	d.Exclamations = p.Language.Exclamations > 0
	d.SelfReferences = p.Language.SelfReferences > 0

	for _, rc := range persona.TopCounts(p.Subreddits, maxSubreddits) {
		d.Subreddits = append(d.Subreddits, Subreddit{Name: rc.Name, Count: rc.Count})
	}
	return d
}

// Render executes the report template.
func Render(d Data) (string, error) {
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Filename returns the report filename for a username.
func Filename(username string) string {
	return fmt.Sprintf("%s_%s.txt", FilenamePrefix, username)
}

// accountAge renders the age of an account as whole years and months.
func accountAge(created, now time.Time) string {
	days := int(now.Sub(created).Hours() / 24)
	if days < 0 {
		days = 0
	}
	years := days / 365
	months := (days % 365) / 30
	return fmt.Sprintf("%d years, %d months", years, months)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func truncate(urls []string, n int) []string {
	if len(urls) > n {
		return urls[:n]
	}
	return urls
}

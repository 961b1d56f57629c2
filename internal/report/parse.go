package report

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Summary is the subset of a written report that can be recovered by
// re-parsing it: ranked interest names with citation totals, and the
// top subreddit interaction counts.
type Summary struct {
	Interests  []Finding
	Subreddits []Interaction
}

// Finding is one parsed interest entry.
type Finding struct {
	Name      string
	Citations int
}

// Interaction is one parsed subreddit entry.
type Interaction struct {
	Name  string
	Count int
}

var (
	sectionRe  = regexp.MustCompile(`^== (.+) ==$`)
	interestRe = regexp.MustCompile(`^- (.+) \(based on (\d+) comments/posts\)$`)
	subRe      = regexp.MustCompile(`^- r/(.+): (\d+) interactions$`)
)

// Parse reads a rendered report and extracts its summary. The format is
// deterministic given identical input, so a render/parse round trip
// recovers the same top interests and subreddit counts.
func Parse(r io.Reader) (Summary, error) {
	var s Summary
	var section string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if m := sectionRe.FindStringSubmatch(line); m != nil {
			section = m[1]
			continue
		}
		switch section {
		case "TOP INTERESTS":
			if m := interestRe.FindStringSubmatch(line); m != nil {
				n, err := strconv.Atoi(m[2])
				if err != nil {
					return Summary{}, err
				}
				// Undo the title capitalization applied at render time.
				s.Interests = append(s.Interests, Finding{Name: strings.ToLower(m[1]), Citations: n})
			}
		case "FREQUENTLY VISITED SUBREDDITS":
			if m := subRe.FindStringSubmatch(line); m != nil {
				n, err := strconv.Atoi(m[2])
				if err != nil {
					return Summary{}, err
				}
				s.Subreddits = append(s.Subreddits, Interaction{Name: m[1], Count: n})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Summary{}, err
	}
	return s, nil
}

// ParseFile parses a report from disk.
func ParseFile(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer f.Close()
	return Parse(f)
}

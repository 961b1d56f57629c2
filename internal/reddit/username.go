package reddit

import (
	"errors"
	"strings"
)

var errEmptyUsername = errors.New("empty username after URL parsing")

// ParseUsername normalizes operator input into a bare username. It
// accepts either a plain username or a profile URL such as
// "https://www.reddit.com/user/someone/", stripping everything up to and
// including "/user/" plus any trailing path or slashes.
func ParseUsername(input string) (string, error) {
	s := strings.TrimSpace(input)
	if i := strings.Index(s, "/user/"); i >= 0 {
		s = s[i+len("/user/"):]
	}
	s = strings.Trim(s, "/")
	// Keep only the username segment if extra path components survived
	// (e.g. a permalink pasted by mistake).
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "", &Error{Kind: KindBadInput, Err: errEmptyUsername}
	}
	return s, nil
}

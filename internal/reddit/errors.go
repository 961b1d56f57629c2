package reddit

import "fmt"

// ErrorKind classifies fetch failures so callers can decide retry vs
// abort policy instead of treating everything as one opaque failure.
type ErrorKind string

const (
	KindBadInput    ErrorKind = "bad_input"
	KindNotFound    ErrorKind = "not_found"
	KindRateLimited ErrorKind = "rate_limited"
	KindTransient   ErrorKind = "transient"
)

// Error is a tagged fetch error.
type Error struct {
	Kind     ErrorKind
	Username string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reddit: %s (user %q): %v", e.Kind, e.Username, e.Err)
	}
	return fmt.Sprintf("reddit: %s (user %q)", e.Kind, e.Username)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// retryable reports whether a failure of this kind is worth another
// attempt. Not-found and bad-input never are.
func (e *Error) retryable() bool {
	return e.Kind == KindRateLimited || e.Kind == KindTransient
}

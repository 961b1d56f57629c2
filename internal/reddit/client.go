package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	retry "github.com/codeGROOVE-dev/retry-go"

	"reddit-persona/internal/model"
)

// Client fetches a user's public activity through Reddit's JSON API.
// No authentication is required for the read-only listing endpoints.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client

	CommentLimit int
	PostLimit    int
	Attempts     uint
}

// NewClient creates a client. baseURL defaults to the public API host;
// userAgent must be set to something descriptive or Reddit will throttle
// aggressively.
func NewClient(baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = "https://www.reddit.com"
	}
	if userAgent == "" {
		userAgent = "reddit-persona/0.1"
	}
	return &Client{
		baseURL:      baseURL,
		userAgent:    userAgent,
		client:       &http.Client{Timeout: 10 * time.Second},
		CommentLimit: 100,
		PostLimit:    50,
		Attempts:     3,
	}
}

// aboutResponse mirrors the subset of /user/<name>/about.json we use.
type aboutResponse struct {
	Data struct {
		Name         string  `json:"name"`
		CreatedUTC   float64 `json:"created_utc"`
		CommentKarma int     `json:"comment_karma"`
		LinkKarma    int     `json:"link_karma"`
		IsGold       bool    `json:"is_gold"`
		IsMod        bool    `json:"is_mod"`
	} `json:"data"`
}

// listing mirrors the envelope of comment/submission listings.
type listing struct {
	Data struct {
		Children []struct {
			Data thing `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// thing is the union of comment and submission fields we care about.
type thing struct {
	Body       string  `json:"body"`
	Title      string  `json:"title"`
	SelfText   string  `json:"selftext"`
	Subreddit  string  `json:"subreddit"`
	CreatedUTC float64 `json:"created_utc"`
	Score      int     `json:"score"`
	Permalink  string  `json:"permalink"`
	IsSelf     bool    `json:"is_self"`
	URL        string  `json:"url"`
}

// Activity fetches account metadata plus recent comments and posts for a
// username. Rate-limited and transient failures are retried with jittered
// backoff; not-found aborts immediately.
func (c *Client) Activity(ctx context.Context, username string) (model.Activity, error) {
	var act model.Activity

	var about aboutResponse
	if err := c.getJSON(ctx, username, fmt.Sprintf("/user/%s/about.json", url.PathEscape(username)), nil, &about); err != nil {
		return act, err
	}
	act.Account = model.Account{
		Username:     username,
		CreatedAt:    time.Unix(int64(about.Data.CreatedUTC), 0).UTC(),
		CommentKarma: about.Data.CommentKarma,
		LinkKarma:    about.Data.LinkKarma,
		IsGold:       about.Data.IsGold,
		IsMod:        about.Data.IsMod,
	}

	var comments listing
	q := url.Values{"limit": {strconv.Itoa(c.CommentLimit)}, "sort": {"new"}}
	if err := c.getJSON(ctx, username, fmt.Sprintf("/user/%s/comments.json", url.PathEscape(username)), q, &comments); err != nil {
		return act, err
	}
	act.Comments = make([]model.Comment, 0, len(comments.Data.Children))
	for _, ch := range comments.Data.Children {
		t := ch.Data
		act.Comments = append(act.Comments, model.Comment{
			Body:      t.Body,
			Subreddit: t.Subreddit,
			CreatedAt: time.Unix(int64(t.CreatedUTC), 0).UTC(),
			Score:     t.Score,
			Permalink: permalinkURL(t.Permalink),
		})
	}

	var posts listing
	q = url.Values{"limit": {strconv.Itoa(c.PostLimit)}, "sort": {"new"}}
	if err := c.getJSON(ctx, username, fmt.Sprintf("/user/%s/submitted.json", url.PathEscape(username)), q, &posts); err != nil {
		return act, err
	}
	act.Posts = make([]model.Post, 0, len(posts.Data.Children))
	for _, ch := range posts.Data.Children {
		t := ch.Data
		act.Posts = append(act.Posts, model.Post{
			Title:     t.Title,
			SelfText:  t.SelfText,
			Subreddit: t.Subreddit,
			CreatedAt: time.Unix(int64(t.CreatedUTC), 0).UTC(),
			Score:     t.Score,
			Permalink: permalinkURL(t.Permalink),
			IsSelf:    t.IsSelf,
			URL:       t.URL,
		})
	}

	slog.Info("reddit: fetched activity", "user", username,
		"comments", len(act.Comments), "posts", len(act.Posts))
	return act, nil
}

// getJSON performs one API GET with retries and decodes the body.
func (c *Client) getJSON(ctx context.Context, username, path string, q url.Values, v any) error {
	endpoint := c.baseURL + path
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	attempts := c.Attempts
	if attempts == 0 {
		attempts = 1
	}
	return retry.Do(
		func() error {
			return c.doOnce(ctx, username, endpoint, v)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(time.Second),
		retry.MaxDelay(30*time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var re *Error
			if errors.As(err, &re) {
				return re.retryable()
			}
			return true
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("reddit: retrying fetch", "attempt", n+1, "url", endpoint, "err", err)
		}),
	)
}

func (c *Client) doOnce(ctx context.Context, username, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return retry.Unrecoverable(&Error{Kind: KindBadInput, Username: username, Err: err})
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.client.Do(req)
	if err != nil {
		return &Error{Kind: KindTransient, Username: username, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return retry.Unrecoverable(&Error{Kind: KindNotFound, Username: username})
	case resp.StatusCode == http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, Username: username, Err: fmt.Errorf("status %d", resp.StatusCode)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &Error{Kind: KindTransient, Username: username, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &Error{Kind: KindTransient, Username: username, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// permalinkURL makes a listing permalink absolute.
func permalinkURL(p string) string {
	if p == "" {
		return ""
	}
	return "https://reddit.com" + p
}

package model

import "time"

// Account holds the basic facts about a Reddit account.
type Account struct {
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"created_at"`
	CommentKarma int       `json:"comment_karma"`
	LinkKarma    int       `json:"link_karma"`
	IsGold       bool      `json:"is_gold"`
	IsMod        bool      `json:"is_mod"`
}

// Comment is a single comment from a user's recent history.
type Comment struct {
	Body      string    `json:"body"`
	Subreddit string    `json:"subreddit"`
	CreatedAt time.Time `json:"created_at"`
	Score     int       `json:"score"`
	Permalink string    `json:"permalink"`
}

// Post is a single submission from a user's recent history.
type Post struct {
	Title     string    `json:"title"`
	SelfText  string    `json:"selftext"`
	Subreddit string    `json:"subreddit"`
	CreatedAt time.Time `json:"created_at"`
	Score     int       `json:"score"`
	Permalink string    `json:"permalink"`
	IsSelf    bool      `json:"is_self"`
	URL       string    `json:"url"`
}

// Activity bundles everything fetched for one user in one run.
// Comments and Posts keep the order the API returned them in (newest first);
// downstream aggregation relies on that order for citation lists.
type Activity struct {
	Account  Account   `json:"account"`
	Comments []Comment `json:"comments"`
	Posts    []Post    `json:"posts"`
}

package reddit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const aboutJSON = `{"data":{"name":"someone","created_utc":1579046400,"comment_karma":1234,"link_karma":56,"is_gold":true,"is_mod":false}}`

const commentsJSON = `{"data":{"children":[
	{"kind":"t1","data":{"body":"I think Python is great!","subreddit":"learnprogramming","created_utc":1717221600,"score":10,"permalink":"/r/learnprogramming/comments/c1/"}},
	{"kind":"t1","data":{"body":"any good movie?","subreddit":"movies","created_utc":1717246800,"score":2,"permalink":"/r/movies/comments/c2/"}}
]}}`

const submittedJSON = `{"data":{"children":[
	{"kind":"t3","data":{"title":"Need advice: what laptop should I buy?","selftext":"budget is tight","subreddit":"laptops","created_utc":1717264800,"score":5,"permalink":"/r/laptops/comments/p1/","is_self":true,"url":"https://www.reddit.com/r/laptops/comments/p1/"}}
]}}`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/user/someone/about.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, aboutJSON)
	})
	mux.HandleFunc("/user/someone/comments.json", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "100" {
			t.Errorf("comments limit = %q, want 100", got)
		}
		fmt.Fprint(w, commentsJSON)
	})
	mux.HandleFunc("/user/someone/submitted.json", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "50" {
			t.Errorf("submitted limit = %q, want 50", got)
		}
		fmt.Fprint(w, submittedJSON)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestActivity(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, "test-agent")

	act, err := c.Activity(context.Background(), "someone")
	if err != nil {
		t.Fatalf("Activity error: %v", err)
	}
	if act.Account.Username != "someone" || act.Account.CommentKarma != 1234 || !act.Account.IsGold {
		t.Errorf("account = %+v", act.Account)
	}
	if len(act.Comments) != 2 {
		t.Fatalf("comments = %d, want 2", len(act.Comments))
	}
	if want := "https://reddit.com/r/learnprogramming/comments/c1/"; act.Comments[0].Permalink != want {
		t.Errorf("comment permalink = %q, want %q", act.Comments[0].Permalink, want)
	}
	if len(act.Posts) != 1 {
		t.Fatalf("posts = %d, want 1", len(act.Posts))
	}
	if !act.Posts[0].IsSelf || act.Posts[0].SelfText != "budget is tight" {
		t.Errorf("post = %+v", act.Posts[0])
	}
}

func TestActivityNotFound(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, "test-agent")

	_, err := c.Activity(context.Background(), "nobody")
	if err == nil {
		t.Fatalf("expected error for unknown user")
	}
	var re *Error
	if !errors.As(err, &re) {
		t.Fatalf("error %v is not *Error", err)
	}
	if re.Kind != KindNotFound {
		t.Errorf("error kind = %s, want %s", re.Kind, KindNotFound)
	}
}

func TestActivityTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-agent")
	c.Attempts = 1 // keep the test fast

	_, err := c.Activity(context.Background(), "someone")
	var re *Error
	if !errors.As(err, &re) || re.Kind != KindTransient {
		t.Errorf("error = %v, want transient kind", err)
	}
}

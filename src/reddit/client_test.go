package reddit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commentsJSON = `[
  {"kind": "Listing", "data": {"children": [{"kind": "t3", "data": {"id": "abc", "title": "post"}}]}},
  {"kind": "Listing", "data": {"children": [
    {"kind": "t1", "data": {"id": "c1", "body": "first top", "replies": {"kind": "Listing", "data": {"children": [
      {"kind": "t1", "data": {"id": "c3", "body": "reply to first", "replies": ""}},
      {"kind": "more", "data": {"id": "m1", "children": ["x", "y"]}}
    ]}}}},
    {"kind": "t1", "data": {"id": "c2", "body": "second top", "replies": ""}},
    {"kind": "more", "data": {"id": "m2", "children": ["z"]}}
  ]}}
]`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/access_token", func(w http.ResponseWriter, r *http.Request) {
		id, secret, ok := r.BasicAuth()
		if !ok || id != "client-id" || secret != "client-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "SEOContentGenerator/1.0", r.Header.Get("User-Agent"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	})

	mux.HandleFunc("/r/all/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "SEOContentGenerator/1.0", r.Header.Get("User-Agent"))
		q := r.URL.Query()
		assert.Equal(t, "blog OR example", q.Get("q"))
		assert.Equal(t, "relevance", q.Get("sort"))
		assert.Equal(t, "100", q.Get("limit"))

		_, _ = w.Write([]byte(`{"kind": "Listing", "data": {"after": null, "children": [
			{"kind": "t3", "data": {"id": "abc", "title": "Hello World", "selftext": "body text"}},
			{"kind": "t5", "data": {"id": "sub"}},
			{"kind": "t3", "data": {"id": "def", "title": "Second", "selftext": ""}}
		]}}`))
	})

	mux.HandleFunc("/comments/abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(commentsJSON))
	})

	mux.HandleFunc("/comments/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func newTestClient(ts *httptest.Server, secret string) *Client {
	return NewClient(Options{
		ClientID:     "client-id",
		ClientSecret: secret,
		UserAgent:    "SEOContentGenerator/1.0",
		TokenURL:     ts.URL + "/api/v1/access_token",
		APIURL:       ts.URL + "/",
		Timeout:      5 * time.Second,
	})
}

func TestSearch(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(ts, "client-secret")

	subs, err := c.Search(context.Background(), "all", "blog OR example", "relevance", 100)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, Submission{ID: "abc", Title: "Hello World", Selftext: "body text"}, subs[0])
	assert.Equal(t, "def", subs[1].ID)
}

func TestSearchBadCredentials(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(ts, "wrong")

	_, err := c.Search(context.Background(), "all", "blog OR example", "relevance", 100)
	assert.Error(t, err)
}

func TestComments(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(ts, "client-secret")

	forest, err := c.Comments(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, forest, 2)
	assert.Equal(t, "first top", forest[0].Body)
	require.Len(t, forest[0].Replies, 1)
	assert.Equal(t, "reply to first", forest[0].Replies[0].Body)
	assert.Empty(t, forest[1].Replies)

	var bodies []string
	for _, cm := range Flatten(forest) {
		bodies = append(bodies, cm.Body)
	}
	assert.Equal(t, []string{"first top", "second top", "reply to first"}, bodies)
}

func TestCommentsStatusError(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(ts, "client-secret")

	_, err := c.Comments(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrStatus)
}

func TestFlattenBreadthFirst(t *testing.T) {
	forest := []Comment{
		{ID: "a", Replies: []Comment{{ID: "a1", Replies: []Comment{{ID: "a11"}}}, {ID: "a2"}}},
		{ID: "b", Replies: []Comment{{ID: "b1"}}},
	}
	var ids []string
	for _, c := range Flatten(forest) {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"a", "b", "a1", "a2", "b1", "a11"}, ids)
	assert.Empty(t, Flatten(nil))
}

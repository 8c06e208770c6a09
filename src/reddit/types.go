package reddit

import (
	"bytes"
	"encoding/json"
)

// Submission is the subset of a t3 thing the keyword extractor reads.
type Submission struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Selftext string `json:"selftext"`
}

// Comment is a t1 thing with its already-loaded replies.
type Comment struct {
	ID      string
	Body    string
	Replies []Comment
}

type thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type listing struct {
	Kind string `json:"kind"`
	Data struct {
		After    string  `json:"after"`
		Children []thing `json:"children"`
	} `json:"data"`
}

type commentData struct {
	ID   string `json:"id"`
	Body string `json:"body"`
	// "" when there are no replies, a Listing otherwise
	Replies json.RawMessage `json:"replies"`
}

// decodeComments converts the children of a comment listing, dropping "more"
// stubs instead of expanding them.
func decodeComments(l listing) ([]Comment, error) {
	var out []Comment
	for _, child := range l.Data.Children {
		if child.Kind != "t1" {
			continue
		}
		var d commentData
		if err := json.Unmarshal(child.Data, &d); err != nil {
			return nil, err
		}
		c := Comment{ID: d.ID, Body: d.Body}
		if r := bytes.TrimSpace(d.Replies); len(r) > 0 && r[0] == '{' {
			var sub listing
			if err := json.Unmarshal(r, &sub); err != nil {
				return nil, err
			}
			replies, err := decodeComments(sub)
			if err != nil {
				return nil, err
			}
			c.Replies = replies
		}
		out = append(out, c)
	}
	return out, nil
}

// Flatten lists a comment forest breadth-first: all top-level comments, then
// their replies level by level.
func Flatten(forest []Comment) []Comment {
	queue := append([]Comment(nil), forest...)
	var out []Comment
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		out = append(out, c)
		queue = append(queue, c.Replies...)
	}
	return out
}

// Reddit API客户端，使用application-only OAuth（client credentials）
// 仅实现关键词提取需要的两个接口：subreddit搜索与评论树
package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var ErrStatus = errors.New("unexpected reddit response status")

type Options struct {
	ClientID     string
	ClientSecret string
	UserAgent    string
	TokenURL     string
	APIURL       string
	Timeout      time.Duration
}

type Client struct {
	apiURL string
	client *http.Client
}

// uaTransport sets the User-Agent reddit requires on every request,
// token requests included.
type uaTransport struct {
	userAgent string
	base      http.RoundTripper
}

func (t *uaTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}

func NewClient(opts Options) *Client {
	base := &http.Client{
		Timeout:   opts.Timeout,
		Transport: &uaTransport{userAgent: opts.UserAgent, base: http.DefaultTransport},
	}
	cc := &clientcredentials.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		TokenURL:     opts.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	// token source keeps this context for refreshes
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	hc := cc.Client(ctx)
	hc.Timeout = opts.Timeout

	return &Client{
		apiURL: strings.TrimRight(opts.APIURL, "/"),
		client: hc,
	}
}

// Search runs one listing request against /r/{subreddit}/search.
func (c *Client) Search(ctx context.Context, subreddit, query, sort string, limit int) ([]Submission, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", sort)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("restrict_sr", "on")
	params.Set("raw_json", "1")

	var l listing
	endpoint := fmt.Sprintf("%s/r/%s/search?%s", c.apiURL, url.PathEscape(subreddit), params.Encode())
	if err := c.get(ctx, endpoint, &l); err != nil {
		return nil, err
	}

	var out []Submission
	for _, child := range l.Data.Children {
		if child.Kind != "t3" {
			continue
		}
		var s Submission
		if err := json.Unmarshal(child.Data, &s); err != nil {
			return nil, fmt.Errorf("decode submission: %w", err)
		}
		out = append(out, s)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Comments returns the comment forest of a submission as loaded by a single
// request. "more" stubs are not followed.
func (c *Client) Comments(ctx context.Context, submissionID string) ([]Comment, error) {
	endpoint := fmt.Sprintf("%s/comments/%s?raw_json=1", c.apiURL, url.PathEscape(submissionID))

	// [submission listing, comment listing]
	var pair []listing
	if err := c.get(ctx, endpoint, &pair); err != nil {
		return nil, err
	}
	if len(pair) < 2 {
		return nil, nil
	}
	comments, err := decodeComments(pair[1])
	if err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return comments, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

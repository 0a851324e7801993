// Package reddit reads public subreddit and user listings from the Reddit
// JSON endpoints. No authentication is needed for public data.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const maxLimit = 100

// Post is the projected shape of one submission in a listing
type Post struct {
	Title       string  `json:"title"`
	Author      string  `json:"author,omitempty"`
	Subreddit   string  `json:"subreddit,omitempty"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	URL         string  `json:"url"`
	PostID      string  `json:"post_id"`
	Selftext    string  `json:"selftext,omitempty"`
}

// PostDetail is the full content of one submission
type PostDetail struct {
	PostID        string  `json:"post_id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Score         int     `json:"score"`
	UpvoteRatio   float64 `json:"upvote_ratio"`
	NumComments   int     `json:"num_comments"`
	CreatedUTC    float64 `json:"created_utc"`
	Selftext      string  `json:"selftext"`
	URL           string  `json:"url"`
	Permalink     string  `json:"permalink"`
	IsVideo       bool    `json:"is_video"`
	LinkFlairText string  `json:"link_flair_text"`
}

// Comment is the projected shape of one comment
type Comment struct {
	Author      string  `json:"author,omitempty"`
	Subreddit   string  `json:"subreddit,omitempty"`
	Body        string  `json:"body"`
	Score       int     `json:"score"`
	CreatedUTC  float64 `json:"created_utc"`
	Edited      bool    `json:"edited,omitempty"`
	IsSubmitter bool    `json:"is_submitter,omitempty"`
	Permalink   string  `json:"permalink"`
}

// thing is the raw item payload shared by posts and comments
type thing struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	Subreddit     string          `json:"subreddit"`
	Score         int             `json:"score"`
	UpvoteRatio   float64         `json:"upvote_ratio"`
	NumComments   int             `json:"num_comments"`
	CreatedUTC    float64         `json:"created_utc"`
	Selftext      string          `json:"selftext"`
	Body          string          `json:"body"`
	URL           string          `json:"url"`
	Permalink     string          `json:"permalink"`
	IsVideo       bool            `json:"is_video"`
	LinkFlairText string          `json:"link_flair_text"`
	Edited        json.RawMessage `json:"edited"`
	IsSubmitter   bool            `json:"is_submitter"`
}

// edited is false or an edit timestamp on the wire
func (t *thing) wasEdited() bool {
	return len(t.Edited) > 0 && string(t.Edited) != "false"
}

type listing struct {
	Data struct {
		Children []struct {
			Kind string `json:"kind"`
			Data thing  `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.With(zap.String("client", "reddit")),
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build reddit request: %w", err)
	}
	// Reddit rejects default Go user agents with 429s
	req.Header.Set("User-Agent", "sports-booking-tools/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Reddit request failed", zap.Error(err), zap.String("path", path))
		return fmt.Errorf("reddit request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("Reddit request returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.String("path", path),
		)
		return fmt.Errorf("reddit request %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode reddit response: %w", err)
	}

	return nil
}

func (c *Client) postsFromListing(l *listing) []Post {
	posts := make([]Post, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		p := child.Data
		posts = append(posts, Post{
			Title:       p.Title,
			Author:      p.Author,
			Subreddit:   p.Subreddit,
			Score:       p.Score,
			NumComments: p.NumComments,
			CreatedUTC:  p.CreatedUTC,
			URL:         c.baseURL + p.Permalink,
			PostID:      p.ID,
			Selftext:    truncate(p.Selftext, 500),
		})
	}
	return posts
}

// SearchSubreddit searches for posts in one subreddit, sorted by relevance
func (c *Client) SearchSubreddit(ctx context.Context, subreddit, query string, limit int) ([]Post, error) {
	params := url.Values{
		"q":           {query},
		"restrict_sr": {"on"},
		"limit":       {strconv.Itoa(clampLimit(limit))},
		"sort":        {"relevance"},
	}

	var l listing
	if err := c.get(ctx, fmt.Sprintf("/r/%s/search.json", subreddit), params, &l); err != nil {
		return nil, err
	}

	return c.postsFromListing(&l), nil
}

// SubredditPosts fetches a subreddit listing; feed is hot, new or top.
// timeFilter only applies to the top feed.
func (c *Client) SubredditPosts(ctx context.Context, subreddit, feed, timeFilter string, limit int) ([]Post, error) {
	params := url.Values{
		"limit": {strconv.Itoa(clampLimit(limit))},
	}
	if feed == "top" && timeFilter != "" {
		params.Set("t", timeFilter)
	}

	var l listing
	if err := c.get(ctx, fmt.Sprintf("/r/%s/%s.json", subreddit, feed), params, &l); err != nil {
		return nil, err
	}

	return c.postsFromListing(&l), nil
}

// PostContent fetches the full content of one post
func (c *Client) PostContent(ctx context.Context, subreddit, postID string) (*PostDetail, error) {
	var pages []listing
	if err := c.get(ctx, fmt.Sprintf("/r/%s/comments/%s.json", subreddit, postID), nil, &pages); err != nil {
		return nil, err
	}

	// First element is the post itself
	if len(pages) == 0 || len(pages[0].Data.Children) == 0 {
		return nil, fmt.Errorf("post %s not found in r/%s", postID, subreddit)
	}

	p := pages[0].Data.Children[0].Data
	return &PostDetail{
		PostID:        postID,
		Title:         p.Title,
		Author:        p.Author,
		Score:         p.Score,
		UpvoteRatio:   p.UpvoteRatio,
		NumComments:   p.NumComments,
		CreatedUTC:    p.CreatedUTC,
		Selftext:      p.Selftext,
		URL:           p.URL,
		Permalink:     c.baseURL + p.Permalink,
		IsVideo:       p.IsVideo,
		LinkFlairText: p.LinkFlairText,
	}, nil
}

// PostComments fetches top-level comments of one post
func (c *Client) PostComments(ctx context.Context, subreddit, postID string, limit int) ([]Comment, error) {
	params := url.Values{
		"limit": {strconv.Itoa(clampLimit(limit))},
	}

	var pages []listing
	if err := c.get(ctx, fmt.Sprintf("/r/%s/comments/%s.json", subreddit, postID), params, &pages); err != nil {
		return nil, err
	}

	// Second element contains the comment tree
	if len(pages) < 2 {
		return nil, fmt.Errorf("post %s not found in r/%s", postID, subreddit)
	}

	comments := make([]Comment, 0, len(pages[1].Data.Children))
	for _, child := range pages[1].Data.Children {
		// Skip "more comments" stubs
		if child.Kind != "t1" {
			continue
		}

		cm := child.Data
		comments = append(comments, Comment{
			Author:      cm.Author,
			Body:        cm.Body,
			Score:       cm.Score,
			CreatedUTC:  cm.CreatedUTC,
			Edited:      cm.wasEdited(),
			IsSubmitter: cm.IsSubmitter,
			Permalink:   c.baseURL + cm.Permalink,
		})
	}

	return comments, nil
}

// UserPosts fetches recent submissions by one user
func (c *Client) UserPosts(ctx context.Context, username string, limit int) ([]Post, error) {
	params := url.Values{
		"limit": {strconv.Itoa(clampLimit(limit))},
	}

	var l listing
	if err := c.get(ctx, fmt.Sprintf("/user/%s/submitted.json", username), params, &l); err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		p := child.Data
		posts = append(posts, Post{
			Title:       p.Title,
			Subreddit:   p.Subreddit,
			Score:       p.Score,
			NumComments: p.NumComments,
			CreatedUTC:  p.CreatedUTC,
			URL:         c.baseURL + p.Permalink,
			PostID:      p.ID,
		})
	}

	return posts, nil
}

// UserComments fetches recent comments by one user
func (c *Client) UserComments(ctx context.Context, username string, limit int) ([]Comment, error) {
	params := url.Values{
		"limit": {strconv.Itoa(clampLimit(limit))},
	}

	var l listing
	if err := c.get(ctx, fmt.Sprintf("/user/%s/comments.json", username), params, &l); err != nil {
		return nil, err
	}

	comments := make([]Comment, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		cm := child.Data
		comments = append(comments, Comment{
			Subreddit:  cm.Subreddit,
			Body:       cm.Body,
			Score:      cm.Score,
			CreatedUTC: cm.CreatedUTC,
			Permalink:  c.baseURL + cm.Permalink,
		})
	}

	return comments, nil
}

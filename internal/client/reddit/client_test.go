package reddit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const listingBody = `{
	"data": {
		"children": [
			{
				"kind": "t3",
				"data": {
					"id": "abc123",
					"title": "Best badminton racket under 3k?",
					"author": "shuttler42",
					"subreddit": "badminton",
					"score": 57,
					"num_comments": 23,
					"created_utc": 1732406400,
					"permalink": "/r/badminton/comments/abc123/best_racket/",
					"selftext": "Looking for recommendations"
				}
			}
		]
	}
}`

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, 5*time.Second, zap.NewNop()), server
}

func TestSearchSubreddit(t *testing.T) {
	var gotPath, gotQuery, gotUA string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(listingBody))
	})
	defer server.Close()

	posts, err := client.SearchSubreddit(context.Background(), "badminton", "racket", 5)
	require.NoError(t, err)

	assert.Equal(t, "/r/badminton/search.json", gotPath)
	assert.Contains(t, gotQuery, "q=racket")
	assert.Contains(t, gotQuery, "restrict_sr=on")
	assert.Contains(t, gotQuery, "limit=5")
	assert.NotEmpty(t, gotUA)
	assert.False(t, strings.HasPrefix(gotUA, "Go-http-client"))

	require.Len(t, posts, 1)
	assert.Equal(t, "abc123", posts[0].PostID)
	assert.Equal(t, "shuttler42", posts[0].Author)
	assert.Equal(t, 57, posts[0].Score)
	assert.Contains(t, posts[0].URL, "/r/badminton/comments/abc123/")
}

func TestSubredditPosts(t *testing.T) {
	var gotPath, gotQuery string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(listingBody))
	})
	defer server.Close()

	_, err := client.SubredditPosts(context.Background(), "badminton", "top", "month", 10)
	require.NoError(t, err)
	assert.Equal(t, "/r/badminton/top.json", gotPath)
	assert.Contains(t, gotQuery, "t=month")

	// Time filter only applies to the top feed
	_, err = client.SubredditPosts(context.Background(), "badminton", "hot", "month", 10)
	require.NoError(t, err)
	assert.Equal(t, "/r/badminton/hot.json", gotPath)
	assert.NotContains(t, gotQuery, "t=month")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 10, clampLimit(0))
	assert.Equal(t, 10, clampLimit(-3))
	assert.Equal(t, 25, clampLimit(25))
	assert.Equal(t, 100, clampLimit(500))
}

func TestSelftextTruncation(t *testing.T) {
	long := strings.Repeat("a", 900)
	body := strings.Replace(listingBody, "Looking for recommendations", long, 1)
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
	defer server.Close()

	posts, err := client.SearchSubreddit(context.Background(), "badminton", "racket", 5)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Len(t, posts[0].Selftext, 500)
}

func TestPostContent(t *testing.T) {
	pages := `[
		{
			"data": {
				"children": [
					{
						"kind": "t3",
						"data": {
							"id": "abc123",
							"title": "Best badminton racket under 3k?",
							"author": "shuttler42",
							"score": 57,
							"upvote_ratio": 0.94,
							"num_comments": 23,
							"created_utc": 1732406400,
							"selftext": "Full text here",
							"url": "https://example.com/article",
							"permalink": "/r/badminton/comments/abc123/best_racket/",
							"is_video": false,
							"link_flair_text": "Gear"
						}
					}
				]
			}
		},
		{"data": {"children": []}}
	]`

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/badminton/comments/abc123.json", r.URL.Path)
		w.Write([]byte(pages))
	})
	defer server.Close()

	post, err := client.PostContent(context.Background(), "badminton", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", post.PostID)
	assert.Equal(t, 0.94, post.UpvoteRatio)
	assert.Equal(t, "Full text here", post.Selftext)
	assert.Equal(t, "Gear", post.LinkFlairText)
}

func TestPostComments(t *testing.T) {
	pages := `[
		{"data": {"children": []}},
		{
			"data": {
				"children": [
					{
						"kind": "t1",
						"data": {
							"author": "smasher",
							"body": "Yonex Astrox all the way",
							"score": 12,
							"created_utc": 1732410000,
							"edited": false,
							"is_submitter": false,
							"permalink": "/r/badminton/comments/abc123/c1/"
						}
					},
					{
						"kind": "t1",
						"data": {
							"author": "shuttler42",
							"body": "Thanks, will check it",
							"score": 3,
							"created_utc": 1732413600,
							"edited": 1732414000,
							"is_submitter": true,
							"permalink": "/r/badminton/comments/abc123/c2/"
						}
					},
					{"kind": "more", "data": {}}
				]
			}
		}
	]`

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(pages))
	})
	defer server.Close()

	comments, err := client.PostComments(context.Background(), "badminton", "abc123", 10)
	require.NoError(t, err)

	// The "more" stub is skipped
	require.Len(t, comments, 2)
	assert.Equal(t, "smasher", comments[0].Author)
	assert.False(t, comments[0].Edited)
	assert.True(t, comments[1].Edited)
	assert.True(t, comments[1].IsSubmitter)
}

func TestUserPosts(t *testing.T) {
	var gotPath string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(listingBody))
	})
	defer server.Close()

	posts, err := client.UserPosts(context.Background(), "shuttler42", 10)
	require.NoError(t, err)
	assert.Equal(t, "/user/shuttler42/submitted.json", gotPath)
	require.Len(t, posts, 1)
	assert.Equal(t, "badminton", posts[0].Subreddit)
}

func TestUserComments(t *testing.T) {
	var gotPath string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{
			"data": {
				"children": [
					{
						"kind": "t1",
						"data": {
							"subreddit": "badminton",
							"body": "Try the local league",
							"score": 8,
							"created_utc": 1732410000,
							"permalink": "/r/badminton/comments/xyz/c9/"
						}
					}
				]
			}
		}`))
	})
	defer server.Close()

	comments, err := client.UserComments(context.Background(), "shuttler42", 10)
	require.NoError(t, err)
	assert.Equal(t, "/user/shuttler42/comments.json", gotPath)
	require.Len(t, comments, 1)
	assert.Equal(t, "badminton", comments[0].Subreddit)
	assert.Equal(t, "Try the local league", comments[0].Body)
}

func TestNon200Status(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	_, err := client.SearchSubreddit(context.Background(), "doesnotexist", "x", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

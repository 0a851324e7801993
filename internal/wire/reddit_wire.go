package wire

import (
	"sports-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReddit(r chi.Router, redditHandler *adaptor.RedditHandler) {
	r.Route("/api/reddit", func(r chi.Router) {
		// Subreddit content
		r.Get("/r/{subreddit}/search", redditHandler.Search)
		r.Get("/r/{subreddit}/hot", redditHandler.Hot)
		r.Get("/r/{subreddit}/new", redditHandler.New)
		r.Get("/r/{subreddit}/top", redditHandler.Top)
		r.Get("/r/{subreddit}/posts/{postID}", redditHandler.PostContent)
		r.Get("/r/{subreddit}/posts/{postID}/comments", redditHandler.PostComments)

		// User content
		r.Get("/u/{username}/posts", redditHandler.UserPosts)
		r.Get("/u/{username}/comments", redditHandler.UserComments)
	})
}

package usecase

import (
	"context"
	"fmt"

	"sports-booking/internal/client/reddit"

	"go.uber.org/zap"
)

type RedditService interface {
	Search(ctx context.Context, subreddit, query string, limit int) ([]reddit.Post, error)
	Feed(ctx context.Context, subreddit, feed, timeFilter string, limit int) ([]reddit.Post, error)
	PostContent(ctx context.Context, subreddit, postID string) (*reddit.PostDetail, error)
	PostComments(ctx context.Context, subreddit, postID string, limit int) ([]reddit.Comment, error)
	UserPosts(ctx context.Context, username string, limit int) ([]reddit.Post, error)
	UserComments(ctx context.Context, username string, limit int) ([]reddit.Comment, error)
}

type redditService struct {
	client *reddit.Client
	log    *zap.Logger
}

func NewRedditService(client *reddit.Client, log *zap.Logger) RedditService {
	return &redditService{
		client: client,
		log:    log.With(zap.String("service", "reddit")),
	}
}

func (s *redditService) Search(ctx context.Context, subreddit, query string, limit int) ([]reddit.Post, error) {
	if subreddit == "" || query == "" {
		return nil, fmt.Errorf("validation failed: subreddit and query are required")
	}

	posts, err := s.client.SearchSubreddit(ctx, subreddit, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search r/%s: %w", subreddit, err)
	}

	return posts, nil
}

func (s *redditService) Feed(ctx context.Context, subreddit, feed, timeFilter string, limit int) ([]reddit.Post, error) {
	if subreddit == "" {
		return nil, fmt.Errorf("validation failed: subreddit is required")
	}

	switch feed {
	case "hot", "new", "top":
	default:
		return nil, fmt.Errorf("validation failed: unknown feed %q", feed)
	}

	posts, err := s.client.SubredditPosts(ctx, subreddit, feed, timeFilter, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch %s posts from r/%s: %w", feed, subreddit, err)
	}

	return posts, nil
}

func (s *redditService) PostContent(ctx context.Context, subreddit, postID string) (*reddit.PostDetail, error) {
	if subreddit == "" || postID == "" {
		return nil, fmt.Errorf("validation failed: subreddit and post ID are required")
	}

	post, err := s.client.PostContent(ctx, subreddit, postID)
	if err != nil {
		return nil, fmt.Errorf("fetch post %s from r/%s: %w", postID, subreddit, err)
	}

	return post, nil
}

func (s *redditService) PostComments(ctx context.Context, subreddit, postID string, limit int) ([]reddit.Comment, error) {
	if subreddit == "" || postID == "" {
		return nil, fmt.Errorf("validation failed: subreddit and post ID are required")
	}

	comments, err := s.client.PostComments(ctx, subreddit, postID, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch comments for post %s from r/%s: %w", postID, subreddit, err)
	}

	return comments, nil
}

func (s *redditService) UserPosts(ctx context.Context, username string, limit int) ([]reddit.Post, error) {
	if username == "" {
		return nil, fmt.Errorf("validation failed: username is required")
	}

	posts, err := s.client.UserPosts(ctx, username, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch posts by u/%s: %w", username, err)
	}

	return posts, nil
}

func (s *redditService) UserComments(ctx context.Context, username string, limit int) ([]reddit.Comment, error) {
	if username == "" {
		return nil, fmt.Errorf("validation failed: username is required")
	}

	comments, err := s.client.UserComments(ctx, username, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch comments by u/%s: %w", username, err)
	}

	return comments, nil
}

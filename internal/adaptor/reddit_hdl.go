package adaptor

import (
	"net/http"
	"strings"

	"sports-booking/internal/usecase"
	"sports-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RedditHandler struct {
	service usecase.RedditService
	log     *zap.Logger
}

func NewRedditHandler(service usecase.RedditService, log *zap.Logger) *RedditHandler {
	return &RedditHandler{
		service: service,
		log:     log.With(zap.String("handler", "reddit")),
	}
}

// Search handles GET /api/reddit/r/{subreddit}/search?q=&limit=
func (h *RedditHandler) Search(w http.ResponseWriter, r *http.Request) {
	subreddit := chi.URLParam(r, "subreddit")
	query := r.URL.Query()
	limit := utils.ParseInt(query.Get("limit"), 10)

	posts, err := h.service.Search(r.Context(), subreddit, query.Get("q"), limit)
	if err != nil {
		h.handleServiceError(w, err, "search subreddit")
		return
	}

	utils.ResponseSuccess(w, "success", posts)
}

// Hot handles GET /api/reddit/r/{subreddit}/hot?limit=
func (h *RedditHandler) Hot(w http.ResponseWriter, r *http.Request) {
	h.feed(w, r, "hot")
}

// New handles GET /api/reddit/r/{subreddit}/new?limit=
func (h *RedditHandler) New(w http.ResponseWriter, r *http.Request) {
	h.feed(w, r, "new")
}

// Top handles GET /api/reddit/r/{subreddit}/top?limit=&time=
func (h *RedditHandler) Top(w http.ResponseWriter, r *http.Request) {
	h.feed(w, r, "top")
}

func (h *RedditHandler) feed(w http.ResponseWriter, r *http.Request, feed string) {
	subreddit := chi.URLParam(r, "subreddit")
	query := r.URL.Query()
	limit := utils.ParseInt(query.Get("limit"), 10)

	timeFilter := query.Get("time")
	if timeFilter == "" {
		timeFilter = "week"
	}

	posts, err := h.service.Feed(r.Context(), subreddit, feed, timeFilter, limit)
	if err != nil {
		h.handleServiceError(w, err, "fetch "+feed+" posts")
		return
	}

	utils.ResponseSuccess(w, "success", posts)
}

// PostContent handles GET /api/reddit/r/{subreddit}/posts/{postID}
func (h *RedditHandler) PostContent(w http.ResponseWriter, r *http.Request) {
	subreddit := chi.URLParam(r, "subreddit")
	postID := chi.URLParam(r, "postID")

	post, err := h.service.PostContent(r.Context(), subreddit, postID)
	if err != nil {
		h.handleServiceError(w, err, "fetch post content")
		return
	}

	utils.ResponseSuccess(w, "success", post)
}

// PostComments handles GET /api/reddit/r/{subreddit}/posts/{postID}/comments?limit=
func (h *RedditHandler) PostComments(w http.ResponseWriter, r *http.Request) {
	subreddit := chi.URLParam(r, "subreddit")
	postID := chi.URLParam(r, "postID")
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 10)

	comments, err := h.service.PostComments(r.Context(), subreddit, postID, limit)
	if err != nil {
		h.handleServiceError(w, err, "fetch post comments")
		return
	}

	utils.ResponseSuccess(w, "success", comments)
}

// UserPosts handles GET /api/reddit/u/{username}/posts?limit=
func (h *RedditHandler) UserPosts(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 10)

	posts, err := h.service.UserPosts(r.Context(), username, limit)
	if err != nil {
		h.handleServiceError(w, err, "fetch user posts")
		return
	}

	utils.ResponseSuccess(w, "success", posts)
}

// UserComments handles GET /api/reddit/u/{username}/comments?limit=
func (h *RedditHandler) UserComments(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 10)

	comments, err := h.service.UserComments(r.Context(), username, limit)
	if err != nil {
		h.handleServiceError(w, err, "fetch user comments")
		return
	}

	utils.ResponseSuccess(w, "success", comments)
}

// handleServiceError handles errors for reddit operations
func (h *RedditHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "status 404"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, errMsg)
	}
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anik404/memory-lane/backend/internal/apperror"
	"github.com/anik404/memory-lane/backend/internal/models"
	"github.com/anik404/memory-lane/backend/internal/repositories"
)

// PostHandler handles HTTP requests related to memories
type PostHandler struct {
	postRepository    repositories.PostRepository
	userRepository    repositories.UserRepository
	commentRepository repositories.CommentRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	commentRepo repositories.CommentRepository,
) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		userRepository:    userRepo,
		commentRepository: commentRepo,
	}
}

// RegisterPostRoutes registers post-related routes. Mutating routes pass
// through the auth gate; listings are public.
func (h *PostHandler) RegisterPostRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/posts", h.GetPosts)
	e.GET("/posts/random", h.GetRandomPost)
	e.POST("/posts", h.CreatePost, auth)
	e.POST("/posts/:id/like", h.ToggleLike, auth)
}

// CreatePost creates a new memory owned by the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ValidationFailed("Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	post := &models.Post{
		Author:  userID,
		Content: req.Content,
		Image:   req.Image,
		Tags:    req.Tags,
		Decade:  req.Decade,
	}

	if err := h.postRepository.CreatePost(ctx, post); err != nil {
		return err
	}

	views, err := buildPostViews(ctx, []models.Post{*post}, h.userRepository, h.commentRepository)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Post created successfully",
		"post":    views[0],
	})
}

// GetPosts returns a filtered, paginated feed of memories, newest-first
func (h *PostHandler) GetPosts(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	filter := repositories.PostFilter{
		Tag:    c.QueryParam("tag"),
		Decade: c.QueryParam("decade"),
		Search: c.QueryParam("search"),
	}

	ctx := c.Request().Context()
	skip := int64((page - 1) * limit)

	posts, err := h.postRepository.FindPosts(ctx, filter, skip, int64(limit))
	if err != nil {
		return err
	}

	total, err := h.postRepository.CountPosts(ctx, filter)
	if err != nil {
		return err
	}

	views, err := buildPostViews(ctx, posts, h.userRepository, h.commentRepository)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts":      views,
		"pagination": models.NewPagination(page, limit, total),
	})
}

// GetRandomPost returns one uniformly-sampled memory
func (h *PostHandler) GetRandomPost(c echo.Context) error {
	ctx := c.Request().Context()

	post, err := h.postRepository.GetRandomPost(ctx)
	if err != nil {
		return err
	}

	views, err := buildPostViews(ctx, []models.Post{*post}, h.userRepository, h.commentRepository)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"post": views[0]})
}

// ToggleLike likes a memory the user hasn't liked yet, and unlikes one they
// have. Membership in the post's liker set is the only signal distinguishing
// the two. Both sides of the relationship are updated.
func (h *PostHandler) ToggleLike(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return apperror.NotFound("Post")
	}

	ctx := c.Request().Context()

	post, err := h.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}

	if _, err := h.userRepository.GetUserByID(ctx, userID); err != nil {
		return err
	}

	isLiked := false
	for _, id := range post.Likes {
		if id == userID {
			isLiked = true
			break
		}
	}

	// Two sequential writes with no transaction; a failure between them
	// leaves the relationship half-updated.
	if isLiked {
		if err := h.postRepository.RemoveLike(ctx, postID, userID); err != nil {
			return err
		}
		if err := h.userRepository.RemoveLikedPost(ctx, userID, postID); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, echo.Map{
			"message":    "Post unliked",
			"isLiked":    false,
			"likesCount": len(post.Likes) - 1,
		})
	}

	if err := h.postRepository.AddLike(ctx, postID, userID); err != nil {
		return err
	}
	if err := h.userRepository.AddLikedPost(ctx, userID, postID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Post liked",
		"isLiked":    true,
		"likesCount": len(post.Likes) + 1,
	})
}

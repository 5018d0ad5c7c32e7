package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anik404/memory-lane/backend/internal/models"
	"github.com/anik404/memory-lane/backend/internal/repositories"
)

// ProfileHandler assembles public user profiles
type ProfileHandler struct {
	userRepository    repositories.UserRepository
	postRepository    repositories.PostRepository
	commentRepository repositories.CommentRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
) *ProfileHandler {
	return &ProfileHandler{
		userRepository:    userRepo,
		postRepository:    postRepo,
		commentRepository: commentRepo,
	}
}

// RegisterProfileRoutes registers profile-related routes
func (h *ProfileHandler) RegisterProfileRoutes(e *echo.Echo) {
	e.GET("/users/:username", h.GetProfile)
}

// GetProfile returns a user's public profile, authored posts, liked posts
// and derived stats
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.userRepository.GetUserByUsername(ctx, c.Param("username"))
	if err != nil {
		return err
	}

	posts, err := h.postRepository.GetPostsByAuthor(ctx, user.ID)
	if err != nil {
		return err
	}

	likedPosts, err := h.postRepository.GetPostsByIDs(ctx, user.LikedPosts)
	if err != nil {
		return err
	}

	postViews, err := buildPostViews(ctx, posts, h.userRepository, h.commentRepository)
	if err != nil {
		return err
	}

	likedViews, err := buildPostViews(ctx, likedPosts, h.userRepository, h.commentRepository)
	if err != nil {
		return err
	}

	totalLikes := 0
	for _, p := range posts {
		totalLikes += len(p.Likes)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":       user.ToPublicProfile(),
		"posts":      postViews,
		"likedPosts": likedViews,
		"stats": models.ProfileStats{
			PostsCount:      len(posts),
			LikedPostsCount: len(likedPosts),
			TotalLikes:      totalLikes,
		},
	})
}

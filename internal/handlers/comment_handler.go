package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anik404/memory-lane/backend/internal/apperror"
	"github.com/anik404/memory-lane/backend/internal/models"
	"github.com/anik404/memory-lane/backend/internal/repositories"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
	userRepository    repositories.UserRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
		userRepository:    userRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/posts/:id/comments", h.GetComments)
	e.POST("/posts/:id/comments", h.CreateComment, auth)
}

// CreateComment creates a top-level comment or a threaded reply on a memory.
// A reply's parent must be an existing comment on the same post; a parent
// that doesn't resolve fails the whole operation.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return apperror.NotFound("Post")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ValidationFailed("Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	if _, err := h.postRepository.GetPostByID(ctx, postID); err != nil {
		return err
	}

	var parentID *primitive.ObjectID
	if req.ParentComment != "" {
		id, err := primitive.ObjectIDFromHex(req.ParentComment)
		if err != nil {
			return apperror.NotFound("Parent comment")
		}
		parent, err := h.commentRepository.GetCommentByID(ctx, id)
		if err != nil {
			return err
		}
		if parent.Post != postID {
			return apperror.NotFound("Parent comment")
		}
		parentID = &id
	}

	comment := &models.Comment{
		Author:        userID,
		Post:          postID,
		Content:       req.Content,
		ParentComment: parentID,
	}

	if err := h.commentRepository.CreateComment(ctx, comment); err != nil {
		return err
	}

	// Sequential relationship writes, no atomicity across documents.
	if err := h.postRepository.AddComment(ctx, postID, comment.ID); err != nil {
		return err
	}
	if parentID != nil {
		if err := h.commentRepository.AddReply(ctx, *parentID, comment.ID); err != nil {
			return err
		}
	}

	author, err := h.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	view := models.CommentView{
		Comment:    *comment,
		AuthorInfo: author.ToAuthorInfo(),
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Comment created successfully",
		"comment": view,
	})
}

// GetComments returns a memory's top-level comments newest-first, each with
// its replies resolved one level deep
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return apperror.NotFound("Post")
	}

	ctx := c.Request().Context()

	topLevel, err := h.commentRepository.GetTopLevelByPost(ctx, postID)
	if err != nil {
		return err
	}

	views, err := buildCommentThreads(ctx, topLevel, h.userRepository, h.commentRepository)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"comments": views})
}

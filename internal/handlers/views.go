package handlers

import (
	"context"
	"sort"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anik404/memory-lane/backend/internal/apperror"
	"github.com/anik404/memory-lane/backend/internal/middleware"
	"github.com/anik404/memory-lane/backend/internal/models"
	"github.com/anik404/memory-lane/backend/internal/repositories"
)

// maxResolvedComments bounds how many of a post's comments get resolved
// when posts are returned in bulk (feed, profile, random).
const maxResolvedComments = 20

// authenticatedUserID returns the verified user identity set by the auth
// middleware, parsed back into an ObjectID.
func authenticatedUserID(c echo.Context) (primitive.ObjectID, error) {
	hex, _ := c.Get(middleware.UserIDKey).(string)
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperror.InvalidCredential("Invalid token subject")
	}
	return id, nil
}

// buildPostViews resolves authors and a bounded number of comments (with
// their authors) for a batch of posts, preserving post order.
func buildPostViews(
	ctx context.Context,
	posts []models.Post,
	userRepo repositories.UserRepository,
	commentRepo repositories.CommentRepository,
) ([]models.PostView, error) {
	var commentIDs []primitive.ObjectID
	for _, p := range posts {
		ids := p.Comments
		if len(ids) > maxResolvedComments {
			ids = ids[len(ids)-maxResolvedComments:]
		}
		commentIDs = append(commentIDs, ids...)
	}

	comments, err := commentRepo.GetCommentsByIDs(ctx, commentIDs)
	if err != nil {
		return nil, err
	}

	commentsByPost := make(map[primitive.ObjectID][]models.Comment)
	for _, cm := range comments {
		commentsByPost[cm.Post] = append(commentsByPost[cm.Post], cm)
	}

	authorSet := make(map[primitive.ObjectID]bool)
	for _, p := range posts {
		authorSet[p.Author] = true
	}
	for _, cm := range comments {
		authorSet[cm.Author] = true
	}
	authorIDs := make([]primitive.ObjectID, 0, len(authorSet))
	for id := range authorSet {
		authorIDs = append(authorIDs, id)
	}

	users, err := userRepo.GetUsersByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]models.PostView, len(posts))
	for i, p := range posts {
		resolved := make([]models.CommentView, 0, len(commentsByPost[p.ID]))
		for _, cm := range commentsByPost[p.ID] {
			author := users[cm.Author]
			resolved = append(resolved, models.CommentView{
				Comment:    cm,
				AuthorInfo: author.ToAuthorInfo(),
			})
		}
		author := users[p.Author]
		views[i] = models.PostView{
			Post:       p,
			AuthorInfo: author.ToAuthorInfo(),
			Resolved:   resolved,
		}
	}
	return views, nil
}

// buildCommentThreads resolves one level of replies for the given top-level
// comments, attaching author info to comments and replies alike.
func buildCommentThreads(
	ctx context.Context,
	topLevel []models.Comment,
	userRepo repositories.UserRepository,
	commentRepo repositories.CommentRepository,
) ([]models.CommentView, error) {
	var replyIDs []primitive.ObjectID
	for _, cm := range topLevel {
		replyIDs = append(replyIDs, cm.Replies...)
	}

	replies, err := commentRepo.GetCommentsByIDs(ctx, replyIDs)
	if err != nil {
		return nil, err
	}

	repliesByParent := make(map[primitive.ObjectID][]models.Comment)
	for _, rp := range replies {
		if rp.ParentComment != nil {
			repliesByParent[*rp.ParentComment] = append(repliesByParent[*rp.ParentComment], rp)
		}
	}
	// Top-level comments come back newest-first, but within a thread the
	// conversation reads top-down: oldest reply first.
	for _, group := range repliesByParent {
		sort.Slice(group, func(i, j int) bool {
			return group[i].CreatedAt.Before(group[j].CreatedAt)
		})
	}

	authorSet := make(map[primitive.ObjectID]bool)
	for _, cm := range topLevel {
		authorSet[cm.Author] = true
	}
	for _, rp := range replies {
		authorSet[rp.Author] = true
	}
	authorIDs := make([]primitive.ObjectID, 0, len(authorSet))
	for id := range authorSet {
		authorIDs = append(authorIDs, id)
	}

	users, err := userRepo.GetUsersByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]models.CommentView, len(topLevel))
	for i, cm := range topLevel {
		resolved := make([]models.CommentView, 0, len(repliesByParent[cm.ID]))
		for _, rp := range repliesByParent[cm.ID] {
			author := users[rp.Author]
			resolved = append(resolved, models.CommentView{
				Comment:    rp,
				AuthorInfo: author.ToAuthorInfo(),
			})
		}
		author := users[cm.Author]
		views[i] = models.CommentView{
			Comment:    cm,
			AuthorInfo: author.ToAuthorInfo(),
			Resolved:   resolved,
		}
	}
	return views, nil
}

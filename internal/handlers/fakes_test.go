package handlers

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anik404/memory-lane/backend/internal/apperror"
	"github.com/anik404/memory-lane/backend/internal/models"
	"github.com/anik404/memory-lane/backend/internal/repositories"
)

// In-memory fakes for the repository interfaces. Using fakes instead of a
// mock framework keeps the tests readable: the fake's behavior mirrors the
// Mongo implementation (newest-first sorts, set semantics, filter
// conjunction) closely enough to exercise handler logic.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
	// set to a non-nil error to simulate a database failure
	failWith error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return apperror.Conflict("username or email already taken")
		}
	}
	user.ID = primitive.NewObjectID()
	if user.LikedPosts == nil {
		user.LikedPosts = []primitive.ObjectID{}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.users[id]
	if !ok {
		return nil, apperror.NotFound("User")
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperror.NotFound("User")
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperror.NotFound("User")
}

func (f *fakeUserRepo) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	out := make(map[primitive.ObjectID]models.User, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = *u
		}
	}
	return out, nil
}

func (f *fakeUserRepo) AddLikedPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	u, ok := f.users[userID]
	if !ok {
		return nil
	}
	for _, id := range u.LikedPosts {
		if id == postID {
			return nil
		}
	}
	u.LikedPosts = append(u.LikedPosts, postID)
	return nil
}

func (f *fakeUserRepo) RemoveLikedPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	u, ok := f.users[userID]
	if !ok {
		return nil
	}
	kept := u.LikedPosts[:0]
	for _, id := range u.LikedPosts {
		if id != postID {
			kept = append(kept, id)
		}
	}
	u.LikedPosts = kept
	return nil
}

type fakePostRepo struct {
	posts    map[primitive.ObjectID]*models.Post
	failWith error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[primitive.ObjectID]*models.Post)}
}

func (f *fakePostRepo) CreatePost(ctx context.Context, post *models.Post) error {
	if f.failWith != nil {
		return f.failWith
	}
	post.ID = primitive.NewObjectID()
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	if post.Comments == nil {
		post.Comments = []primitive.ObjectID{}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakePostRepo) GetPostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, apperror.NotFound("Post")
	}
	copied := *p
	return &copied, nil
}

func matchesFilter(p *models.Post, filter repositories.PostFilter) bool {
	if filter.Tag != "" {
		found := false
		for _, t := range p.Tags {
			if t == filter.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.Decade != "" && p.Decade != filter.Decade {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		hit := strings.Contains(strings.ToLower(p.Content), needle)
		for _, t := range p.Tags {
			if strings.Contains(strings.ToLower(t), needle) {
				hit = true
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func (f *fakePostRepo) matching(filter repositories.PostFilter) []models.Post {
	var out []models.Post
	for _, p := range f.posts {
		if matchesFilter(p, filter) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakePostRepo) FindPosts(ctx context.Context, filter repositories.PostFilter, skip, limit int64) ([]models.Post, error) {
	all := f.matching(filter)
	if skip >= int64(len(all)) {
		return []models.Post{}, nil
	}
	all = all[skip:]
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakePostRepo) CountPosts(ctx context.Context, filter repositories.PostFilter) (int64, error) {
	return int64(len(f.matching(filter))), nil
}

func (f *fakePostRepo) GetRandomPost(ctx context.Context) (*models.Post, error) {
	for _, p := range f.posts {
		copied := *p
		return &copied, nil
	}
	return nil, apperror.NotFound("Post")
}

func (f *fakePostRepo) GetPostsByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.posts {
		if p.Author == author {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePostRepo) GetPostsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Post, error) {
	var out []models.Post
	for _, id := range ids {
		if p, ok := f.posts[id]; ok {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePostRepo) AddLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	p, ok := f.posts[postID]
	if !ok {
		return nil
	}
	for _, id := range p.Likes {
		if id == userID {
			return nil
		}
	}
	p.Likes = append(p.Likes, userID)
	return nil
}

func (f *fakePostRepo) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	p, ok := f.posts[postID]
	if !ok {
		return nil
	}
	kept := p.Likes[:0]
	for _, id := range p.Likes {
		if id != userID {
			kept = append(kept, id)
		}
	}
	p.Likes = kept
	return nil
}

func (f *fakePostRepo) AddComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	p, ok := f.posts[postID]
	if !ok {
		return nil
	}
	p.Comments = append(p.Comments, commentID)
	return nil
}

type fakeCommentRepo struct {
	comments map[primitive.ObjectID]*models.Comment
	failWith error
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[primitive.ObjectID]*models.Comment)}
}

func (f *fakeCommentRepo) CreateComment(ctx context.Context, comment *models.Comment) error {
	if f.failWith != nil {
		return f.failWith
	}
	comment.ID = primitive.NewObjectID()
	if comment.Replies == nil {
		comment.Replies = []primitive.ObjectID{}
	}
	if comment.Likes == nil {
		comment.Likes = []primitive.ObjectID{}
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	copied := *comment
	f.comments[comment.ID] = &copied
	return nil
}

func (f *fakeCommentRepo) GetCommentByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	cm, ok := f.comments[id]
	if !ok {
		return nil, apperror.NotFound("Comment")
	}
	copied := *cm
	return &copied, nil
}

func (f *fakeCommentRepo) GetTopLevelByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	var out []models.Comment
	for _, cm := range f.comments {
		if cm.Post == postID && cm.ParentComment == nil {
			out = append(out, *cm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCommentRepo) GetCommentsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Comment, error) {
	var out []models.Comment
	for _, id := range ids {
		if cm, ok := f.comments[id]; ok {
			out = append(out, *cm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCommentRepo) AddReply(ctx context.Context, parentID, replyID primitive.ObjectID) error {
	parent, ok := f.comments[parentID]
	if !ok {
		return apperror.NotFound("Comment")
	}
	parent.Replies = append(parent.Replies, replyID)
	return nil
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Decades is the fixed enumeration of eras a memory can belong to.
var Decades = []string{"80s", "90s", "2000s"}

// Tags is the fixed set of categories a memory can be tagged with.
var Tags = []string{
	"Cartoons", "Music", "Toys", "Movies", "TV Shows",
	"Fashion", "Gadgets", "Games", "Places",
}

// Post represents a memory stored in MongoDB
type Post struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Author    primitive.ObjectID   `json:"author" bson:"author"`
	Content   string               `json:"content" bson:"content"`
	Image     string               `json:"image" bson:"image"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments  []primitive.ObjectID `json:"comments" bson:"comments"`
	Tags      []string             `json:"tags" bson:"tags"`
	Decade    string               `json:"decade" bson:"decade"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time            `json:"updated_at" bson:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new memory
type CreatePostRequest struct {
	Content string   `json:"content" validate:"required,min=1,max=1000"`
	Image   string   `json:"image" validate:"required"`
	Tags    []string `json:"tags,omitempty" validate:"omitempty,dive,oneof=Cartoons Music Toys Movies 'TV Shows' Fashion Gadgets Games Places"`
	Decade  string   `json:"decade" validate:"required,oneof=80s 90s 2000s"`
}

// PostView is a post with its author and comments resolved for responses
type PostView struct {
	Post
	AuthorInfo AuthorInfo    `json:"author_info"`
	Resolved   []CommentView `json:"resolved_comments"`
}

// Pagination is the metadata block returned alongside a feed page
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalPosts  int64 `json:"totalPosts"`
	HasMore     bool  `json:"hasMore"`
}

// NewPagination derives page metadata from the page number, page size and
// total document count. totalPages is the ceiling of total/limit.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalPosts:  total,
		HasMore:     page < totalPages,
	}
}

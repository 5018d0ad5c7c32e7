package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment on a memory. A nil ParentComment marks a
// top-level comment; replies reference their parent and are one level deep.
type Comment struct {
	ID            primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Author        primitive.ObjectID   `json:"author" bson:"author"`
	Post          primitive.ObjectID   `json:"post" bson:"post"`
	Content       string               `json:"content" bson:"content"`
	ParentComment *primitive.ObjectID  `json:"parent_comment" bson:"parent_comment"`
	Replies       []primitive.ObjectID `json:"replies" bson:"replies"`
	Likes         []primitive.ObjectID `json:"likes" bson:"likes"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at" bson:"updated_at"`
}

// CreateCommentRequest defines the request body for creating a comment or reply
type CreateCommentRequest struct {
	Content       string `json:"content" validate:"required,min=1,max=500"`
	ParentComment string `json:"parentComment,omitempty"`
}

// CommentView is a comment with its author resolved; top-level comments
// additionally carry their resolved replies.
type CommentView struct {
	Comment
	AuthorInfo AuthorInfo    `json:"author_info"`
	Resolved   []CommentView `json:"resolved_replies,omitempty"`
}

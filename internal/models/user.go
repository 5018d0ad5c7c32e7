package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultAvatar is assigned to users who register without an avatar.
const DefaultAvatar = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=100&h=100&fit=crop&crop=face"

// User represents a registered user stored in MongoDB
type User struct {
	ID         primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Username   string               `json:"username" bson:"username"`
	Email      string               `json:"email" bson:"email"`
	Password   string               `json:"-" bson:"password"` // bcrypt hash, never serialized
	Avatar     string               `json:"avatar" bson:"avatar"`
	Bio        string               `json:"bio" bson:"bio"`
	LikedPosts []primitive.ObjectID `json:"liked_posts" bson:"liked_posts"`
	CreatedAt  time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at" bson:"updated_at"`
}

// AuthorInfo is the denormalized author view attached to posts and comments
type AuthorInfo struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Avatar   string             `json:"avatar"`
}

// ToAuthorInfo returns the public author fields of a user
func (u *User) ToAuthorInfo() AuthorInfo {
	return AuthorInfo{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}

// PublicProfile is the profile view returned by the profile endpoint.
// Everything except the credential hash and the raw liked-post id list.
type PublicProfile struct {
	ID        primitive.ObjectID `json:"id"`
	Username  string             `json:"username"`
	Email     string             `json:"email"`
	Avatar    string             `json:"avatar"`
	Bio       string             `json:"bio"`
	CreatedAt time.Time          `json:"created_at"`
}

// ToPublicProfile returns the public profile fields of a user
func (u *User) ToPublicProfile() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Bio      string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// LoginRequest defines the request body for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileStats are the derived counters returned with a public profile
type ProfileStats struct {
	PostsCount      int `json:"postsCount"`
	LikedPostsCount int `json:"likedPostsCount"`
	TotalLikes      int `json:"totalLikes"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"user_id"` // ObjectID hex of the authenticated user
	jwt.RegisteredClaims
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostType is either a forum thread or a blog article.
type PostType string

const (
	PostTypeForum PostType = "forum"
	PostTypeBlog  PostType = "blog"
)

// Valid reports whether t is a known post type.
func (t PostType) Valid() bool {
	return t == PostTypeForum || t == PostTypeBlog
}

type Post struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Content     string
	Type        PostType
	CategoryID  *uuid.UUID
	ProductID   *uuid.UUID
	Tags        string
	CreatedDate time.Time

	// Populated by list queries.
	AuthorUsername string
}

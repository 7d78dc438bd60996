package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreatePostRequest doubles as the full-replace payload for PUT: all
// three fields are required in both cases.
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	UserID  int64  `json:"user_id" binding:"required"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.UserID,
			validation.Required.Error("user_id is required"),
			validation.Min(int64(1)),
		),
	)
}

// UpdatePostRequest is a partial update: nil fields stay untouched
// and are never reset to empty.
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty,
			validation.Length(1, 255),
		),
		validation.Field(&r.Content, validation.NilOrNotEmpty),
	)
}

// PostDTO is the outward representation of a post.
type PostDTO struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	UserID     int64     `json:"user_id"`
	DatePosted time.Time `json:"date_posted"`
	Author     *Author   `json:"author,omitempty"`
}

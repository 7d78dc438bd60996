package post

import "time"

// Post is the domain entity, mapped 1:1 to the posts table. Every
// post is owned by exactly one user; a post whose user_id does not
// reference an existing user is invalid and never persisted.
type Post struct {
	ID         int64     `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	UserID     int64     `db:"user_id" json:"user_id"`
	DatePosted time.Time `db:"date_posted" json:"date_posted"`

	// Author is the joined owner summary, populated on reads.
	Author *Author `json:"author,omitempty"`
}

// Author is the owner summary embedded in post responses.
type Author struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	ImageFile *string `json:"image_file,omitempty"`
}

func (p *Post) ToDTO() PostDTO {
	return PostDTO{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		UserID:     p.UserID,
		DatePosted: p.DatePosted,
		Author:     p.Author,
	}
}

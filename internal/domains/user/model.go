package user

import "time"

// User is the domain entity, mapped 1:1 to the users table.
// IDs are assigned by the database on insert and never change.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`

	// Never expose the hash in JSON
	PasswordHash string `db:"password_hash" json:"-"`

	// Optional profile image reference
	ImageFile *string `db:"image_file" json:"image_file,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ToDTO strips persistence-only fields before the entity leaves the
// service layer.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		ImageFile: u.ImageFile,
		CreatedAt: u.CreatedAt,
	}
}

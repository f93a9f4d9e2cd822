package models

import "time"

// User represents an account entity used for authentication and as the owner
// of diary entries and monthly reports.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// Nickname is the display name of the user.
	Nickname string `json:"nickname"`

	// Avatar is the picture chosen on the profile page. Empty until set.
	Avatar Avatar `json:"avatar,omitempty"`

	// Password carries the plain-text password on registration and login
	// requests. It is cleared before the user leaves the service layer.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Profile returns the public view of the account.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:              u.UserID,
		Email:           u.Email,
		Nickname:        u.Nickname,
		Avatar:          u.Avatar,
		ProfileComplete: u.Nickname != "" && u.Avatar != "",
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Avatar is one of the predefined profile pictures.
type Avatar string

const (
	AvatarGreen  Avatar = "GREEN"
	AvatarPink   Avatar = "PINK"
	AvatarYellow Avatar = "YELLOW"
)

// IsValid reports whether a is one of the known avatars.
func (a Avatar) IsValid() bool {
	switch a {
	case AvatarGreen, AvatarPink, AvatarYellow:
		return true
	}
	return false
}

// UserProfile is the body of GET /api/user/me and PUT /api/user/profile.
type UserProfile struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Nickname        string `json:"nickname"`
	Avatar          Avatar `json:"avatar,omitempty"`
	ProfileComplete bool   `json:"profileComplete"`
}

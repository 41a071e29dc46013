package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	RoleID    int       `json:"role_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.RoleID == RoleAdmin
}

type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// PasswordReset mirrors the recovery-token columns on usuarios. A token is
// valid while ExpiresAt is in the future and Used is false.
type PasswordReset struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
	Used      bool
}

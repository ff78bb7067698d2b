package model

import "time"

// Role distinguishes student accounts from instructor accounts.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// User is a platform account. Registration is the institutional
// enrollment number (matrícula) students log in with.
type User struct {
	ID           int       `json:"id"`
	Registration string    `json:"registration"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Registration string `json:"registration" binding:"required,min=4,max=20"`
	Password     string `json:"password" binding:"required,min=4,max=128"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

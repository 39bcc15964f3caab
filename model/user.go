package model

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// --- USER ---
type User struct {
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Role     UserRole  `json:"role"`
	Theme    UserTheme `json:"theme"`
}

func (u *User) ToDto() UserDto {
	return UserDto{
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Theme:    u.Theme,
	}
}

type UserDto struct {
	Username string    `json:"username"`
	Email    string    `json:"email" validate:"required,email"`
	Role     UserRole  `json:"role"`
	Theme    UserTheme `json:"theme"`
}

// LoginRequest is the demo login payload. Any password is accepted, the
// account is created on first login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" example:"secret"`
}

func (r *LoginRequest) ToEntity() (*User, error) {
	password := r.Password
	if password == "" {
		password = "demo"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		Username: strings.ToLower(strings.Split(r.Email, "@")[0]),
		Email:    r.Email,
		Password: string(hashed),
		Role:     RoleUser,
		Theme:    ThemeDark,
	}, nil
}

// Package models holds the server-side data shapes shared by the store,
// the services and the HTTP layer.
package models

import (
	"log/slog"
	"time"
)

// User is the persisted credential record. PasswordHash never leaves the
// server: it is excluded from JSON and from log output.
type User struct {
	ID               string    `json:"-"`
	UserName         string    `json:"username"`
	Email            string    `json:"email"`
	OrganisationName string    `json:"organisation_name"`
	PasswordHash     string    `json:"-"`
	CreatedAt        time.Time `json:"-"`
}

// Public strips the record down to what may be returned to a caller.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		UserName:         u.UserName,
		Email:            u.Email,
		OrganisationName: u.OrganisationName,
	}
}

func (u User) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", u.ID),
		slog.String("email", u.Email),
	)
}

// PublicUser is the user view returned by registration and authentication.
type PublicUser struct {
	UserName         string `json:"username"`
	Email            string `json:"email"`
	OrganisationName string `json:"organisation_name"`
}

// RegisterRequest is the payload of POST /register.
type RegisterRequest struct {
	UserName         string `json:"username" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	OrganisationName string `json:"organisation_name"`
	Password         string `json:"password" binding:"required"`
	ConfirmPassword  string `json:"confirm_password" binding:"required"`
}

func (r RegisterRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", r.UserName),
		slog.String("email", r.Email),
		slog.String("organisation_name", r.OrganisationName),
	)
}

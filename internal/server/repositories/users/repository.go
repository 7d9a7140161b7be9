// Package users is the credential store: a narrow lookup/insert interface
// with PostgreSQL and in-memory implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository is the store contract used by registration and login.
//
// GetUserByEmail returns common.ErrorNotFound when no record matches.
// Create returns common.ErrEmailAlreadyRegistered when the email is taken.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

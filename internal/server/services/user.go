// Package services contains server-side business logic. This file implements
// UserService, which handles registration and credential checks against the
// user store.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

// UserService provides authentication-related operations:
//   - Register: create users
//   - Authenticate: verify credentials and return the public user view
//
// Session tokens are minted by the transport layer, not here.
type UserService struct {
	repo   users.Repository
	hasher auth.PasswordHasher

	dummyOnce sync.Once
	dummyHash string
}

// NewUserService constructs a UserService over a user store and a hasher.
func NewUserService(repo users.Repository, hasher auth.PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// Register validates req, checks the email is free and stores a new user.
//
// Errors: common.ErrPasswordsDoNotMatch and common.ErrWeakPassword
// (kind common.ErrorValidation), common.ErrEmailAlreadyRegistered (kind
// common.ErrorAlreadyExists), or a wrapped store error. Nothing is written
// unless every check passes.
//
// The existence check and the insert are separate store calls; two
// concurrent registrations for one email are settled by the store's
// uniqueness guarantee, which Create reports as ErrEmailAlreadyRegistered.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.PublicUser, error) {
	if req.Password != req.ConfirmPassword {
		return nil, common.ErrPasswordsDoNotMatch
	}

	_, err := s.repo.GetUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, common.ErrEmailAlreadyRegistered
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !auth.IsValidPassword(req.Password) {
		return nil, common.ErrWeakPassword
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &models.User{
		UserName:         req.UserName,
		Email:            req.Email,
		OrganisationName: req.OrganisationName,
		PasswordHash:     hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyRegistered) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user.Public(), nil
}

// Authenticate checks email and password. An unknown email and a wrong
// password both yield common.ErrorUnauthorized; store failures are returned
// wrapped.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.PublicUser, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn a hash comparison so unknown emails cost as much as known ones
			s.hasher.Verify(password, s.getDummyHash())
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return user.Public(), nil
}

func (s *UserService) getDummyHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("gophauth-dummy-password")
	})
	return s.dummyHash
}

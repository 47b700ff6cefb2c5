// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, password-reset requests,
// and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/qrkeeper/qrkeeper/internal/common"
	"github.com/qrkeeper/qrkeeper/internal/server/auth"
	"github.com/qrkeeper/qrkeeper/internal/server/config"
	"github.com/qrkeeper/qrkeeper/internal/server/models"
	"github.com/qrkeeper/qrkeeper/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users and mint a token
// - Login: verify credentials and mint a token
// - ForgotPassword: accept a reset request without revealing account existence
// - GetByID: resolve a token's user id to an account
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	mailer        Mailer
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, mailer Mailer, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		mailer:        mailer,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with a bcrypt-hashed password and returns the
// stored user along with a fresh bearer token. Empty fields yield
// common.ErrorValidation; a taken email yields common.ErrorEmailAlreadyExists.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", common.ErrorValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, common.ErrorEmailAlreadyExists) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Login verifies email and password and returns the user and a fresh bearer
// token. A missing user and a wrong password both yield
// common.ErrorInvalidCredentials so account existence does not leak.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// ForgotPassword requests a reset-link delivery for email. It succeeds for
// known and unknown addresses alike; the caller always gets the same answer.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)
	if _, err := repo.GetByEmail(ctx, email); err != nil {
		// Unknown address: same outward behavior, no delivery.
		return nil
	}

	if err := s.mailer.SendPasswordReset(ctx, email); err != nil {
		// Delivery problems must not reveal anything either.
		return nil
	}
	return nil
}

// GetByID resolves a user id to an account. Missing users yield
// common.ErrorNotFound.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

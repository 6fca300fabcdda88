package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/repository"
)

// Default login seeded on first boot, matching what the dashboard ships
// with out of the box.
const (
	defaultAdminUser = "admin"
	defaultAdminPass = "123"
)

// UserRepoMinimal is the subset of repository.UserRepo used by AuthService.
type UserRepoMinimal interface {
	Create(ctx context.Context, u *repository.User) error
	GetByUsername(ctx context.Context, username string) (*repository.User, error)
}

// AuthService verifies dashboard credentials.
type AuthService interface {
	// Authenticate verifies username/password against the stored hash.
	Authenticate(ctx context.Context, username, password string) error

	// EnsureAdmin seeds the default admin login if no such user exists.
	EnsureAdmin(ctx context.Context) error
}

type authServiceImpl struct {
	repo UserRepoMinimal
}

// NewAuthService constructs a new AuthService.
func NewAuthService(repo UserRepoMinimal) AuthService {
	return &authServiceImpl{repo: repo}
}

var ErrInvalidCreds = errors.New("invalid credentials")

// Authenticate returns ErrInvalidCreds for both an unknown username and a
// wrong password, so callers cannot tell the two apart.
func (s *authServiceImpl) Authenticate(ctx context.Context, username, password string) error {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCreds
	}
	return nil
}

// EnsureAdmin creates the default admin user when missing. Passwords are
// stored bcrypt-hashed even for the seed login.
func (s *authServiceImpl) EnsureAdmin(ctx context.Context) error {
	existing, err := s.repo.GetByUsername(ctx, defaultAdminUser)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.Create(ctx, &repository.User{
		Username:     defaultAdminUser,
		PasswordHash: string(hashed),
	})
}

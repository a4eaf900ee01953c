package services

import (
	"errors"
	"fmt"

	"beautyshop/internal/models"
	"beautyshop/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and the credential check at login. There
// is no token issuance: login returns the user record and the client keeps
// it.
type AuthService struct {
	userRepo   repositories.UserRepository
	adminEmail string
}

// NewAuthService creates a new AuthService. adminEmail is the one address
// that registers with the administrator flag set.
func NewAuthService(userRepo repositories.UserRepository, adminEmail string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		adminEmail: adminEmail,
	}
}

// Register hashes the password and creates the user. A duplicate email
// surfaces as ErrEmailTaken.
func (s *AuthService) Register(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidRequest)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		IsAdmin:      email == s.adminEmail,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, fmt.Errorf("%q: %w", email, ErrEmailTaken)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login authenticates a user by email and password. Both an unknown email
// and a wrong password come back as ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

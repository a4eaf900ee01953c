package repositories

import "beautyshop/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create returns ErrConflict when the email is already registered.
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
}

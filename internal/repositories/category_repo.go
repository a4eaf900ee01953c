package repositories

import (
	"beautyshop/internal/models"
)

// CategoryRepository defines the interface for category reference data.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	// GetBySlug returns ErrNotFound for an unknown slug.
	GetBySlug(slug string) (*models.Category, error)
	Create(category *models.Category) error
}

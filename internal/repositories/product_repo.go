package repositories

import (
	"beautyshop/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// ListViews returns products joined with their category slug. An empty
	// or "all" slug returns the whole catalog.
	ListViews(categorySlug string) ([]models.ProductView, error)
	Create(product *models.Product) error
	Delete(id uint) error
	Count() (int64, error)
}

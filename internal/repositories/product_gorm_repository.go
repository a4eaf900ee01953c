package repositories

import (
	"fmt"

	"beautyshop/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// ListViews retrieves products joined with their category slug, optionally
// filtered by that slug.
func (r *GORMProductRepository) ListViews(categorySlug string) ([]models.ProductView, error) {
	views := make([]models.ProductView, 0)
	q := r.db.Table("products").
		Select("products.id AS id, products.name AS name, products.price AS price, products.image_url AS image, products.description AS description, categories.slug AS category").
		Joins("JOIN categories ON categories.id = products.category_id")
	if categorySlug != "" && categorySlug != "all" {
		q = q.Where("categories.slug = ?", categorySlug)
	}
	if err := q.Order("products.id").Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return views, nil
}

// Create creates a new product.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Delete deletes a product by its ID.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the total number of products.
func (r *GORMProductRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Product{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

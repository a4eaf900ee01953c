package services

import (
	"beautyshop/internal/models"
	"beautyshop/internal/repositories"
)

// CatalogService handles product and category listing for the storefront.
type CatalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListProducts retrieves products, optionally filtered by category slug. An
// empty slug, or "all", returns the whole catalog.
func (s *CatalogService) ListProducts(categorySlug string) ([]models.ProductView, error) {
	return s.productRepo.ListViews(categorySlug)
}

// ListCategories returns the categories in the storefront shape, with the
// slug doubling as the identifier.
func (s *CatalogService) ListCategories() ([]models.CategoryRef, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}

	refs := make([]models.CategoryRef, 0, len(categories))
	for _, c := range categories {
		refs = append(refs, models.CategoryRef{ID: c.Slug, Label: c.Label})
	}
	return refs, nil
}

package services

import (
	"errors"
	"fmt"

	"beautyshop/internal/models"
	"beautyshop/internal/repositories"
)

// AdminService handles the administrative panel: product management, the
// stats overview, and order status transitions (which live outside the
// checkout core and write the status field directly).
type AdminService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	orderRepo    repositories.OrderRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, orderRepo repositories.OrderRepository) *AdminService {
	return &AdminService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
	}
}

// CreateProductInput carries the admin product form fields. The category
// arrives as a slug and is resolved to its ID here.
type CreateProductInput struct {
	Name         string
	Price        float64
	CategorySlug string
	ImageURL     string
	Description  string
}

// Stats is the admin panel overview.
type Stats struct {
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
}

// CreateProduct resolves the category slug and inserts the product,
// returning its new ID. An unknown slug is an invalid request, not a store
// failure.
func (s *AdminService) CreateProduct(in CreateProductInput) (uint, error) {
	if in.Name == "" || in.Price < 0 || in.CategorySlug == "" {
		return 0, fmt.Errorf("%w: name, price and category are required", ErrInvalidRequest)
	}

	category, err := s.categoryRepo.GetBySlug(in.CategorySlug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, fmt.Errorf("%w: unknown category %q", ErrInvalidRequest, in.CategorySlug)
		}
		return 0, err
	}

	product := models.Product{
		Name:        in.Name,
		Price:       in.Price,
		CategoryID:  category.ID,
		ImageURL:    in.ImageURL,
		Description: in.Description,
	}
	if err := s.productRepo.Create(&product); err != nil {
		return 0, err
	}
	return product.ID, nil
}

// DeleteProduct deletes a product by its ID.
func (s *AdminService) DeleteProduct(id uint) error {
	return s.productRepo.Delete(id)
}

// GetStats returns the product count, order count, and completed revenue.
func (s *AdminService) GetStats() (Stats, error) {
	products, err := s.productRepo.Count()
	if err != nil {
		return Stats{}, err
	}
	orders, err := s.orderRepo.Count()
	if err != nil {
		return Stats{}, err
	}
	revenue, err := s.orderRepo.RevenueByStatus(models.OrderStatusCompleted)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Products: products, Orders: orders, Revenue: revenue}, nil
}

// ListCategoryOptions returns the categories in the admin form shape.
func (s *AdminService) ListCategoryOptions() ([]models.CategoryOption, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}

	options := make([]models.CategoryOption, 0, len(categories))
	for _, c := range categories {
		options = append(options, models.CategoryOption{Label: c.Label, Value: c.Slug})
	}
	return options, nil
}

// UpdateOrderStatus moves an order to one of the known statuses.
func (s *AdminService) UpdateOrderStatus(orderID uint, status string) error {
	switch status {
	case models.OrderStatusPending, models.OrderStatusCompleted, models.OrderStatusCancelled:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.orderRepo.UpdateStatus(orderID, status)
}

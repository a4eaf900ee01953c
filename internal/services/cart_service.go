package services

import (
	"fmt"

	"beautyshop/internal/models"
	"beautyshop/internal/repositories"
)

// CartService handles business logic for the shopping cart.
type CartService struct {
	repo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{
		repo: repo,
	}
}

// GetCart retrieves the user's cart lines with live product display fields.
// An empty cart is an empty slice, not an error.
func (s *CartService) GetCart(userID uint) ([]models.CartLine, error) {
	return s.repo.GetLines(userID)
}

// AddItem adds quantity of a product to the user's cart. Quantity
// accumulates across calls; this is deliberately not idempotent.
func (s *CartService) AddItem(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 || quantity <= 0 {
		return fmt.Errorf("%w: userId, productId and a positive quantity are required", ErrInvalidRequest)
	}
	return s.repo.AddItem(userID, productID, quantity)
}

// RemoveItem deletes the product's line from the user's cart entirely; there
// is no partial-quantity decrement.
func (s *CartService) RemoveItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return fmt.Errorf("%w: userId and productId are required", ErrInvalidRequest)
	}
	return s.repo.RemoveItem(userID, productID)
}

package repositories

import (
	"beautyshop/internal/models"
)

// CartRepository defines the interface for cart line data access.
type CartRepository interface {
	// GetLines returns the user's cart joined with live product display
	// fields, in insertion order. An empty cart yields an empty slice.
	GetLines(userID uint) ([]models.CartLine, error)
	// AddItem increments the quantity of an existing (user, product) line by
	// quantity, or inserts a new line. Repeated calls accumulate.
	AddItem(userID, productID uint, quantity int) error
	// RemoveItem deletes the line entirely. Returns ErrNotFound if the user
	// has no line for that product.
	RemoveItem(userID, productID uint) error
	// Clear deletes every line for the user. Clearing an empty cart is a
	// no-op, not an error.
	Clear(userID uint) error
}

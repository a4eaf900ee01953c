package repositories

import (
	"fmt"
	"sync"

	"beautyshop/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
// Display fields on the returned lines are whatever was registered through
// SetProduct; only identity and quantity are tracked otherwise.
type MockCartRepository struct {
	lines    map[uint][]models.CartLine // keyed by user ID, insertion order
	products map[uint]models.CartLine   // display fields per product ID
	mu       sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		lines:    make(map[uint][]models.CartLine),
		products: make(map[uint]models.CartLine),
	}
}

// SetProduct registers the display fields used for lines of that product.
func (r *MockCartRepository) SetProduct(productID uint, name string, price float64, image string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[productID] = models.CartLine{ID: productID, Name: name, Price: price, Image: image}
}

// GetLines returns the user's cart lines.
func (r *MockCartRepository) GetLines(userID uint) ([]models.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.CartLine, 0, len(r.lines[userID]))
	for _, line := range r.lines[userID] {
		if p, ok := r.products[line.ID]; ok {
			line.Name, line.Price, line.Image = p.Name, p.Price, p.Image
		}
		out = append(out, line)
	}
	return out, nil
}

// AddItem accumulates quantity on an existing line or appends a new one.
func (r *MockCartRepository) AddItem(userID, productID uint, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, line := range r.lines[userID] {
		if line.ID == productID {
			r.lines[userID][i].Quantity += quantity
			return nil
		}
	}
	r.lines[userID] = append(r.lines[userID], models.CartLine{ID: productID, Quantity: quantity})
	return nil
}

// RemoveItem deletes the line for the product.
func (r *MockCartRepository) RemoveItem(userID, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, line := range r.lines[userID] {
		if line.ID == productID {
			r.lines[userID] = append(r.lines[userID][:i], r.lines[userID][i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cart line for user %d product %d: %w", userID, productID, ErrNotFound)
}

// Clear removes every line for the user.
func (r *MockCartRepository) Clear(userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.lines, userID)
	return nil
}

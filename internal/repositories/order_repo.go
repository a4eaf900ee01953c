package repositories

import (
	"beautyshop/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create inserts the order header and fills in its new ID.
	Create(order *models.Order) error
	// CreateItems inserts the order's line snapshots. Lines are immutable
	// once written; there is no update counterpart.
	CreateItems(items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	// UpdateStatus writes the status field directly. Returns ErrNotFound if
	// no such order exists.
	UpdateStatus(id uint, status string) error
	Count() (int64, error)
	// RevenueByStatus sums TotalAmount over orders in the given status,
	// returning 0 when there are none.
	RevenueByStatus(status string) (float64, error)
}

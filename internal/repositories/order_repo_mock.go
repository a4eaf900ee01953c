package repositories

import (
	"fmt"
	"sync"
	"time"

	"beautyshop/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[uint]models.Order
	items  map[uint][]models.OrderItem
	nextID uint
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[uint]models.Order),
		items:  make(map[uint][]models.OrderItem),
		nextID: 1,
	}
}

// Create adds a new order and assigns its ID.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// CreateItems stores the order line snapshots.
func (r *MockOrderRepository) CreateItems(items []models.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range items {
		r.items[it.OrderID] = append(r.items[it.OrderID], it)
	}
	return nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	order.Items = append([]models.OrderItem(nil), r.items[id]...)
	return &order, nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// Count returns the number of stored orders.
func (r *MockOrderRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.orders)), nil
}

// RevenueByStatus sums totals over orders in the given status.
func (r *MockOrderRepository) RevenueByStatus(status string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var revenue float64
	for _, order := range r.orders {
		if order.Status == status {
			revenue += order.TotalAmount
		}
	}
	return revenue, nil
}

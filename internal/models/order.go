package models

import "time"

// Order statuses. The checkout engine only ever assigns Pending; the other
// statuses are reachable through the admin status update.
const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// Payment method labels. The label is stored, not processed.
const (
	PaymentMethodCard = "Card"
	PaymentMethodCash = "Cash"
)

// Order represents a committed customer order.
type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	UserID          uint        `json:"user_id"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status" gorm:"type:varchar(20)"`
	RecipientName   string      `json:"recipient_name" gorm:"type:varchar(255)"`
	PhoneNumber     string      `json:"phone_number" gorm:"type:varchar(50)"`
	DeliveryAddress string      `json:"delivery_address" gorm:"type:varchar(512)"`
	PaymentMethod   string      `json:"payment_method" gorm:"type:varchar(20)"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is a point-in-time snapshot of one ordered line. PriceAtOrder is
// captured when the order is committed and never updated afterwards, so later
// catalog price changes do not rewrite order history.
type OrderItem struct {
	ID           uint    `json:"-" gorm:"primaryKey"`
	OrderID      uint    `json:"order_id"`
	ProductID    uint    `json:"product_id"`
	Quantity     int     `json:"quantity"`
	PriceAtOrder float64 `json:"price_at_order" gorm:"column:price_at_order"`
}

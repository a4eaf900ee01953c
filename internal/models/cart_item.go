package models

import "time"

// CartItem is a pending line in a user's cart. There is at most one row per
// (user, product) pair; adding an already-present product increments the
// quantity instead of inserting a second row, and quantity never drops below
// one (removal deletes the row).
type CartItem struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_cart_user_product"`
	ProductID uint      `json:"productId" gorm:"uniqueIndex:idx_cart_user_product"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CartLine is a cart item joined with the live product display fields, as
// returned by the cart fetch endpoint.
type CartLine struct {
	ID       uint    `json:"id"` // product ID
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

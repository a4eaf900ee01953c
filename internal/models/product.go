package models

import "time"

// Product represents a product in the store catalog.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255)" validate:"required,min=1,max=255"`
	Price       float64   `json:"price" validate:"gte=0"`
	CategoryID  uint      `json:"-"`
	ImageURL    string    `json:"image" gorm:"type:varchar(512)"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductView is a product joined with its category slug, as served to the
// storefront listing.
type ProductView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

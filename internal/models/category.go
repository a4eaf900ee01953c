package models

// Category is static reference data used to classify products.
type Category struct {
	ID    uint   `json:"-" gorm:"primaryKey"`
	Label string `json:"label" gorm:"type:varchar(100)" validate:"required"`
	Slug  string `json:"slug" gorm:"uniqueIndex;type:varchar(100)" validate:"required"`
}

// CategoryRef is the storefront-facing shape: the slug doubles as the ID.
type CategoryRef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CategoryOption is the admin form shape (label/value pairs for a select).
type CategoryOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

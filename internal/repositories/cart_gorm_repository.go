package repositories

import (
	"errors"
	"fmt"

	"beautyshop/internal/models"

	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetLines retrieves the user's cart lines joined with the products table.
func (r *GORMCartRepository) GetLines(userID uint) ([]models.CartLine, error) {
	lines := make([]models.CartLine, 0)
	err := r.db.Table("cart_items").
		Select("cart_items.product_id AS id, products.name AS name, products.price AS price, products.image_url AS image, cart_items.quantity AS quantity").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id").
		Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart for user %d: %w", userID, err)
	}
	return lines, nil
}

// AddItem accumulates quantity on the existing line, or inserts a new one.
// The increment is a single relative UPDATE so that concurrent adds for the
// same (user, product) pair serialize on the row at the store level.
func (r *GORMCartRepository) AddItem(userID, productID uint, quantity int) error {
	res := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
	if res.Error != nil {
		return fmt.Errorf("failed to update cart line: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	created := r.db.Create(&item)
	if created.Error == nil {
		return nil
	}
	if errors.Is(created.Error, gorm.ErrDuplicatedKey) {
		// Lost the race against a concurrent first add; fall back to the
		// increment path.
		res = r.db.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
		if res.Error != nil {
			return fmt.Errorf("failed to update cart line: %w", res.Error)
		}
		return nil
	}
	return fmt.Errorf("failed to insert cart line: %w", created.Error)
}

// RemoveItem deletes the (user, product) line outright.
func (r *GORMCartRepository) RemoveItem(userID, productID uint) error {
	res := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart line: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart line for user %d product %d: %w", userID, productID, ErrNotFound)
	}
	return nil
}

// Clear deletes all cart lines for the user.
func (r *GORMCartRepository) Clear(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %d: %w", userID, err)
	}
	return nil
}

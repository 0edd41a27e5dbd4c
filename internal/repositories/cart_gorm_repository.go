package repositories

import (
	"fmt"

	"gerai/internal/apperrors"
	"gerai/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// ListByUser returns every cart line belonging to a user.
func (r *GORMCartRepository) ListByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart items for user %s: %w", userID, err)
	}
	return items, nil
}

// GetByID returns a single cart line.
func (r *GORMCartRepository) GetByID(cartID string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "cart_id = ?", cartID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("cart item with ID %s: %w", cartID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item %s: %w", cartID, err)
	}
	return &item, nil
}

// FindByUserAndProduct returns the user's line for a product, if any.
func (r *GORMCartRepository) FindByUserAndProduct(userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("cart item for product %s: %w", productID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find cart item for product %s: %w", productID, err)
	}
	return &item, nil
}

// Create adds a new cart line.
func (r *GORMCartRepository) Create(item *models.CartItem) error {
	if item.CartID == "" {
		item.CartID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// Update saves a cart line.
func (r *GORMCartRepository) Update(item *models.CartItem) error {
	res := r.db.Save(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %s: %w", item.CartID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a cart line.
func (r *GORMCartRepository) Delete(cartID string) error {
	res := r.db.Delete(&models.CartItem{}, "cart_id = ?", cartID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %s: %w", cartID, apperrors.ErrNotFound)
	}
	return nil
}

// ClearByUser removes every cart line of the user. Clearing an already
// empty cart is not an error.
func (r *GORMCartRepository) ClearByUser(userID string) error {
	if err := r.db.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}

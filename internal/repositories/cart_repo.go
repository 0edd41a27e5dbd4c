package repositories

import "gerai/internal/models"

// CartRepository defines the interface for cart line item data access.
type CartRepository interface {
	ListByUser(userID string) ([]models.CartItem, error)
	GetByID(cartID string) (*models.CartItem, error)
	// FindByUserAndProduct returns the user's existing line for a product,
	// or an ErrNotFound-wrapped error if the product is not in the cart yet.
	FindByUserAndProduct(userID, productID string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	Update(item *models.CartItem) error
	Delete(cartID string) error
	// ClearByUser removes every line of the user's cart. Order placement
	// calls this inside the placement transaction.
	ClearByUser(userID string) error
}

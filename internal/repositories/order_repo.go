package repositories

import "gerai/internal/models"

// OrderRepository defines the interface for order data access. Orders are
// never deleted; only status and cancellation reason change after creation.
type OrderRepository interface {
	// Create persists the order together with all of its items.
	Create(order *models.Order) error
	// GetByID returns the order with its items loaded.
	GetByID(orderID string) (*models.Order, error)
	GetItemByID(orderItemID string) (*models.OrderItem, error)
	ListItemsByOrder(orderID string) ([]models.OrderItem, error)

	UpdateStatus(orderID string, status models.OrderStatus) error
	UpdateItemStatus(orderItemID string, status models.OrderStatus) error
	// UpdateCancellation sets the status and cancellation reason together.
	UpdateCancellation(orderID string, status models.OrderStatus, reason string) error

	ListByCustomer(customerID string, offset, limit int) ([]models.Order, int64, error)
	// ListByVendor returns orders containing at least one item whose product
	// currently belongs to the vendor. Ownership is recomputed per query
	// since products can change hands.
	ListByVendor(vendorID string, offset, limit int) ([]models.Order, int64, error)
}

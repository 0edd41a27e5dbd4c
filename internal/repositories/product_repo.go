package repositories

import "gerai/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetByID(id string) (*models.Product, error)
	// GetByIDForUpdate locks the product row for the rest of the enclosing
	// transaction. Stock adjustments go through this so concurrent orders
	// serialize on the row instead of over-selling.
	GetByIDForUpdate(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error

	ListVisible(offset, limit int) ([]models.Product, int64, error)
	ListHidden(offset, limit int) ([]models.Product, int64, error)
	Search(query string, offset, limit int) ([]models.Product, int64, error)
	ListByCategory(category string, offset, limit int) ([]models.Product, int64, error)
	ListByVendor(vendorID string, offset, limit int) ([]models.Product, int64, error)
}

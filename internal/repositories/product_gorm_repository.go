package repositories

import (
	"fmt"

	"gerai/internal/apperrors"
	"gerai/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetByIDForUpdate retrieves a product with a row-level lock. Only
// meaningful inside a transaction.
func (r *GORMProductRepository) GetByIDForUpdate(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock product %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database. Product IDs follow the
// short 16-character form used throughout the catalog.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()[:16]
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", product.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// ListVisible returns a page of customer-visible products with the total
// visible count.
func (r *GORMProductRepository) ListVisible(offset, limit int) ([]models.Product, int64, error) {
	return r.list(r.db.Model(&models.Product{}).Where("is_visible = ?", true), offset, limit)
}

// ListHidden returns a page of unpublished products.
func (r *GORMProductRepository) ListHidden(offset, limit int) ([]models.Product, int64, error) {
	return r.list(r.db.Model(&models.Product{}).Where("is_visible = ?", false), offset, limit)
}

// Search returns visible products whose name or description contains the
// query string.
func (r *GORMProductRepository) Search(query string, offset, limit int) ([]models.Product, int64, error) {
	pattern := "%" + query + "%"
	q := r.db.Model(&models.Product{}).
		Where("is_visible = ?", true).
		Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	return r.list(q, offset, limit)
}

// ListByCategory returns visible products in the given category.
func (r *GORMProductRepository) ListByCategory(category string, offset, limit int) ([]models.Product, int64, error) {
	q := r.db.Model(&models.Product{}).
		Where("is_visible = ?", true).
		Where("category = ?", category)
	return r.list(q, offset, limit)
}

// ListByVendor returns all products belonging to a vendor, hidden included.
func (r *GORMProductRepository) ListByVendor(vendorID string, offset, limit int) ([]models.Product, int64, error) {
	return r.list(r.db.Model(&models.Product{}).Where("vendor_id = ?", vendorID), offset, limit)
}

func (r *GORMProductRepository) list(q *gorm.DB, offset, limit int) ([]models.Product, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}
	var products []models.Product
	if err := q.Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

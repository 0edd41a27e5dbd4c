package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"gerai/internal/apperrors"
	"gerai/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &product, nil
}

// GetByIDForUpdate behaves like GetByID; the in-memory store has no row
// locks.
func (r *MockProductRepository) GetByIDForUpdate(id string) (*models.Product, error) {
	return r.GetByID(id)
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()[:16]
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, apperrors.ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// ListVisible returns a page of visible products.
func (r *MockProductRepository) ListVisible(offset, limit int) ([]models.Product, int64, error) {
	return r.listWhere(offset, limit, func(p models.Product) bool { return p.IsVisible })
}

// ListHidden returns a page of hidden products.
func (r *MockProductRepository) ListHidden(offset, limit int) ([]models.Product, int64, error) {
	return r.listWhere(offset, limit, func(p models.Product) bool { return !p.IsVisible })
}

// Search matches visible products on name or description.
func (r *MockProductRepository) Search(query string, offset, limit int) ([]models.Product, int64, error) {
	return r.listWhere(offset, limit, func(p models.Product) bool {
		return p.IsVisible && (strings.Contains(p.Name, query) || strings.Contains(p.Description, query))
	})
}

// ListByCategory returns visible products in a category.
func (r *MockProductRepository) ListByCategory(category string, offset, limit int) ([]models.Product, int64, error) {
	return r.listWhere(offset, limit, func(p models.Product) bool {
		return p.IsVisible && p.Category == category
	})
}

// ListByVendor returns all products of a vendor.
func (r *MockProductRepository) ListByVendor(vendorID string, offset, limit int) ([]models.Product, int64, error) {
	return r.listWhere(offset, limit, func(p models.Product) bool { return p.VendorID == vendorID })
}

func (r *MockProductRepository) listWhere(offset, limit int, keep func(models.Product) bool) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0)
	for _, p := range r.products {
		if keep(p) {
			matched = append(matched, p)
		}
	}
	// Map iteration order is random; sort for stable pages.
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.Product{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

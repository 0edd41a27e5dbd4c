package repositories

import (
	"fmt"
	"sort"
	"sync"

	"gerai/internal/apperrors"
	"gerai/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	items map[string]models.CartItem
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[string]models.CartItem),
	}
}

// ListByUser returns all cart lines of a user.
func (r *MockCartRepository) ListByUser(userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.CartItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			list = append(list, item)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CartID < list[j].CartID })
	return list, nil
}

// GetByID returns a cart line by its ID.
func (r *MockCartRepository) GetByID(cartID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[cartID]
	if !ok {
		return nil, fmt.Errorf("cart item with ID %s: %w", cartID, apperrors.ErrNotFound)
	}
	return &item, nil
}

// FindByUserAndProduct returns the user's line for a product, if any.
func (r *MockCartRepository) FindByUserAndProduct(userID, productID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			found := item
			return &found, nil
		}
	}
	return nil, fmt.Errorf("cart item for product %s: %w", productID, apperrors.ErrNotFound)
}

// Create adds a new cart line.
func (r *MockCartRepository) Create(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.CartID == "" {
		item.CartID = uuid.New().String()
	}
	r.items[item.CartID] = *item
	return nil
}

// Update modifies an existing cart line.
func (r *MockCartRepository) Update(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.CartID]; !ok {
		return fmt.Errorf("cart item with ID %s: %w", item.CartID, apperrors.ErrNotFound)
	}
	r.items[item.CartID] = *item
	return nil
}

// Delete removes a cart line.
func (r *MockCartRepository) Delete(cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[cartID]; !ok {
		return fmt.Errorf("cart item with ID %s: %w", cartID, apperrors.ErrNotFound)
	}
	delete(r.items, cartID)
	return nil
}

// ClearByUser removes every cart line of the user.
func (r *MockCartRepository) ClearByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

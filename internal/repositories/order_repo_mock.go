package repositories

import (
	"fmt"
	"sort"
	"sync"

	"gerai/internal/apperrors"
	"gerai/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex

	// Products resolves product ownership for ListByVendor. Optional; with
	// no catalog attached, vendor queries return nothing.
	Products *MockProductRepository
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Create adds a new order with its items.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.OrderID == "" {
		order.OrderID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].OrderItemID == "" {
			order.Items[i].OrderItemID = uuid.New().String()
		}
		order.Items[i].OrderID = order.OrderID
	}
	r.orders[order.OrderID] = *order
	return nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(orderID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
	}
	return &order, nil
}

// GetItemByID returns an order item by its ID.
func (r *MockOrderRepository) GetItemByID(orderItemID string) (*models.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		for _, item := range order.Items {
			if item.OrderItemID == orderItemID {
				found := item
				return &found, nil
			}
		}
	}
	return nil, fmt.Errorf("order item with ID %s: %w", orderItemID, apperrors.ErrNotFound)
}

// ListItemsByOrder returns every item of an order.
func (r *MockOrderRepository) ListItemsByOrder(orderID string) ([]models.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
	}
	items := make([]models.OrderItem, len(order.Items))
	copy(items, order.Items)
	return items, nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(orderID string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
	}
	order.Status = status
	r.orders[orderID] = order
	return nil
}

// UpdateItemStatus updates the status of a single order item.
func (r *MockOrderRepository) UpdateItemStatus(orderItemID string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, order := range r.orders {
		for i := range order.Items {
			if order.Items[i].OrderItemID == orderItemID {
				order.Items[i].Status = status
				r.orders[id] = order
				return nil
			}
		}
	}
	return fmt.Errorf("order item with ID %s: %w", orderItemID, apperrors.ErrNotFound)
}

// UpdateCancellation sets the cancelled status and reason.
func (r *MockOrderRepository) UpdateCancellation(orderID string, status models.OrderStatus, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
	}
	order.Status = status
	order.CancellationReason = reason
	r.orders[orderID] = order
	return nil
}

// ListByCustomer returns a page of the customer's orders.
func (r *MockOrderRepository) ListByCustomer(customerID string, offset, limit int) ([]models.Order, int64, error) {
	return r.listWhere(offset, limit, func(o models.Order) bool { return o.CustomerID == customerID })
}

// ListByVendor returns orders containing at least one of the vendor's
// products.
func (r *MockOrderRepository) ListByVendor(vendorID string, offset, limit int) ([]models.Order, int64, error) {
	owned := make(map[string]bool)
	if r.Products != nil {
		products, _, err := r.Products.ListByVendor(vendorID, 0, int(^uint(0)>>1))
		if err != nil {
			return nil, 0, err
		}
		for _, p := range products {
			owned[p.ID] = true
		}
	}
	return r.listWhere(offset, limit, func(o models.Order) bool {
		for _, item := range o.Items {
			if owned[item.ProductID] {
				return true
			}
		}
		return false
	})
}

func (r *MockOrderRepository) listWhere(offset, limit int, keep func(models.Order) bool) ([]models.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Order, 0)
	for _, o := range r.orders {
		if keep(o) {
			matched = append(matched, o)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].OrderID < matched[j].OrderID })

	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.Order{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

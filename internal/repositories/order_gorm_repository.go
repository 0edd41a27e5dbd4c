package repositories

import (
	"fmt"

	"gerai/internal/apperrors"
	"gerai/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// Create persists an order and its items in one insert chain.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.OrderID == "" {
		order.OrderID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].OrderItemID == "" {
			order.Items[i].OrderItemID = uuid.New().String()
		}
		order.Items[i].OrderID = order.OrderID
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID returns an order with its items preloaded.
func (r *GORMOrderRepository) GetByID(orderID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, "order_id = ?", orderID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return &order, nil
}

// GetItemByID returns a single order item.
func (r *GORMOrderRepository) GetItemByID(orderItemID string) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.db.First(&item, "order_item_id = ?", orderItemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order item with ID %s: %w", orderItemID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order item %s: %w", orderItemID, err)
	}
	return &item, nil
}

// ListItemsByOrder returns every item of an order.
func (r *GORMOrderRepository) ListItemsByOrder(orderID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items for order %s: %w", orderID, err)
	}
	return items, nil
}

// UpdateStatus overwrites the status of an order.
func (r *GORMOrderRepository) UpdateStatus(orderID string, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).Where("order_id = ?", orderID).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for order %s: %w", orderID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
	}
	return nil
}

// UpdateItemStatus overwrites the status of an order item.
func (r *GORMOrderRepository) UpdateItemStatus(orderItemID string, status models.OrderStatus) error {
	res := r.db.Model(&models.OrderItem{}).Where("order_item_id = ?", orderItemID).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for order item %s: %w", orderItemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order item with ID %s: %w", orderItemID, apperrors.ErrNotFound)
	}
	return nil
}

// UpdateCancellation sets the cancelled status and the reason in one write.
func (r *GORMOrderRepository) UpdateCancellation(orderID string, status models.OrderStatus, reason string) error {
	res := r.db.Model(&models.Order{}).Where("order_id = ?", orderID).Updates(map[string]interface{}{
		"status":              status,
		"cancellation_reason": reason,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to cancel order %s: %w", orderID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", orderID, apperrors.ErrNotFound)
	}
	return nil
}

// ListByCustomer returns a page of the customer's orders, newest first.
func (r *GORMOrderRepository) ListByCustomer(customerID string, offset, limit int) ([]models.Order, int64, error) {
	q := r.db.Model(&models.Order{}).Where("customer_id = ?", customerID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders for customer %s: %w", customerID, err)
	}

	var orders []models.Order
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Preload("Items").Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders for customer %s: %w", customerID, err)
	}
	return orders, total, nil
}

// ListByVendor returns orders that contain at least one item whose product
// is currently owned by the vendor. The ownership join runs per query.
func (r *GORMOrderRepository) ListByVendor(vendorID string, offset, limit int) ([]models.Order, int64, error) {
	vendorProducts := r.db.Model(&models.Product{}).Select("id").Where("vendor_id = ?", vendorID)
	vendorOrders := r.db.Model(&models.OrderItem{}).Select("order_id").Where("product_id IN (?)", vendorProducts)
	q := r.db.Model(&models.Order{}).Where("order_id IN (?)", vendorOrders)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders for vendor %s: %w", vendorID, err)
	}

	var orders []models.Order
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Preload("Items").Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders for vendor %s: %w", vendorID, err)
	}
	return orders, total, nil
}

package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"gerai/internal/apperrors"
	"gerai/internal/models"
	"gerai/internal/pagination"
	"gerai/internal/repositories"
)

// EventPublisher publishes order lifecycle events. Satisfied by the
// rabbitmq client; nil disables publishing.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// OrderService owns the order lifecycle: cart-to-order conversion, status
// transitions with stock reconciliation, and cancellation. Every
// multi-entity mutation runs inside one transaction.
type OrderService struct {
	repos repositories.RepositorySet
	tx    repositories.TxRunner
	mq    EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(repos repositories.RepositorySet, tx repositories.TxRunner, mq EventPublisher) *OrderService {
	return &OrderService{
		repos: repos,
		tx:    tx,
		mq:    mq,
	}
}

// classify keeps domain errors as-is and marks anything else as a transient
// persistence failure the caller may retry.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrInvalidInput) ||
		errors.Is(err, apperrors.ErrConflict) {
		return err
	}
	return fmt.Errorf("%w: %w", apperrors.ErrPersistence, err)
}

// round2 rounds to 2 decimal places, the precision order totals are stored
// at.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PlaceOrder converts the user's cart into an order. The shipping snapshot
// is copied from the user record, every unit price is frozen at its current
// discounted value, and the cart is cleared — all inside one transaction.
// Stock is NOT reserved here; that happens when an item moves to Processing.
// Returns the new order's id.
func (s *OrderService) PlaceOrder(userID, orderDate string) (string, error) {
	var orderID string

	err := s.tx.InTransaction(func(repos repositories.RepositorySet) error {
		user, err := repos.Users.GetByID(userID)
		if err != nil {
			return err
		}
		if !user.HasShippingDetails() {
			return fmt.Errorf("%w: shipping details are incomplete", apperrors.ErrInvalidInput)
		}

		cartItems, err := repos.Carts.ListByUser(userID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return fmt.Errorf("%w: the cart item list cannot be empty", apperrors.ErrInvalidInput)
		}

		order := &models.Order{
			CustomerID: user.ID,
			OrderDate:  orderDate,
			Status:     models.StatusPending,
			// Shipping snapshot, fixed at this instant.
			PhoneNumber: user.PhoneNumber,
			UserName:    user.Username,
			Address:     user.Address,
			City:        user.City,
			State:       user.State,
			PostalCode:  user.PostalCode,
		}

		var totalPrice float64
		for _, line := range cartItems {
			// Any missing product aborts the whole placement.
			product, err := repos.Products.GetByID(line.ProductID)
			if err != nil {
				return err
			}

			unitPrice := product.UnitPrice()
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				ImageURI:    product.ImageURI,
				Price:       unitPrice,
				Quantity:    line.Quantity,
				Size:        line.Size,
				Color:       line.Color,
				Status:      models.StatusPending,
			})
			totalPrice += unitPrice * float64(line.Quantity)
		}
		order.TotalOrderPrice = round2(totalPrice)

		if err := repos.Orders.Create(order); err != nil {
			return err
		}
		orderID = order.OrderID

		// The cart clear rides in the same transaction: a failed placement
		// leaves the cart untouched.
		return repos.Carts.ClearByUser(userID)
	})
	if err != nil {
		return "", classify(err)
	}

	s.publish("order.created", map[string]interface{}{
		"order_id":    orderID,
		"customer_id": userID,
		"status":      models.StatusPending,
	})
	return orderID, nil
}

// SetOrderStatus overwrites an order's status. Any status in the vocabulary
// is reachable from any other; the permissive transition graph is
// deliberate, matching how fulfilment staff actually correct records.
func (s *OrderService) SetOrderStatus(orderID, status string) error {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return classify(s.repos.Orders.UpdateStatus(orderID, parsed))
}

// SetOrderItemStatus transitions one order item and reconciles product
// stock. The rule keys off the item's current status:
//
//	Pending  -> Processing  reserves stock (decrement by quantity)
//	!Pending -> Cancelled   releases stock (increment by quantity)
//
// A pending item cancelled directly never reserved stock, so nothing is
// credited back. After the write, an order whose items are all Delivered is
// itself promoted to Delivered.
func (s *OrderService) SetOrderItemStatus(orderItemID, status string) error {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	var orderID string
	err = s.tx.InTransaction(func(repos repositories.RepositorySet) error {
		item, err := repos.Orders.GetItemByID(orderItemID)
		if err != nil {
			return err
		}
		orderID = item.OrderID

		delta := 0
		if parsed == models.StatusProcessing && item.Status == models.StatusPending {
			delta = -item.Quantity
		} else if parsed == models.StatusCancelled && item.Status != models.StatusPending {
			delta = item.Quantity
		}
		if delta != 0 {
			if err := adjustStock(repos.Products, item.ProductID, delta); err != nil {
				return err
			}
		}

		if err := repos.Orders.UpdateItemStatus(orderItemID, parsed); err != nil {
			return err
		}

		// One-directional rollup: all items Delivered promotes the order.
		// No other combination touches the order status.
		items, err := repos.Orders.ListItemsByOrder(item.OrderID)
		if err != nil {
			return err
		}
		allDelivered := true
		for _, it := range items {
			if it.Status != models.StatusDelivered {
				allDelivered = false
				break
			}
		}
		if allDelivered {
			return repos.Orders.UpdateStatus(item.OrderID, models.StatusDelivered)
		}
		return nil
	})
	if err != nil {
		return classify(err)
	}

	s.publish("order.item_status", map[string]interface{}{
		"order_id":      orderID,
		"order_item_id": orderItemID,
		"status":        parsed,
	})
	return nil
}

// CancelOrder sets the order to Cancelled with a reason and restores stock
// for every item that had already reserved it (anything not Pending).
// Partial restores never commit: the whole cancellation is one transaction.
func (s *OrderService) CancelOrder(orderID, reason string) error {
	if len(reason) < 2 || len(reason) > 200 {
		return fmt.Errorf("%w: cancellation reason must be between 2 and 200 characters", apperrors.ErrInvalidInput)
	}

	err := s.tx.InTransaction(func(repos repositories.RepositorySet) error {
		order, err := repos.Orders.GetByID(orderID)
		if err != nil {
			return err
		}

		for _, item := range order.Items {
			// Pending items never reserved stock, so nothing comes back.
			if item.Status == models.StatusPending {
				continue
			}
			if err := adjustStock(repos.Products, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		return repos.Orders.UpdateCancellation(orderID, models.StatusCancelled, reason)
	})
	if err != nil {
		return classify(err)
	}

	s.publish("order.cancelled", map[string]interface{}{
		"order_id": orderID,
		"reason":   reason,
	})
	return nil
}

// adjustStock applies a stock delta under a row lock. A product that has
// been removed from the catalog is skipped: historical order items may
// outlive their product.
func adjustStock(products repositories.ProductRepository, productID string, delta int) error {
	product, err := products.GetByIDForUpdate(productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	product.StockQuantity += delta
	return products.Update(product)
}

// CustomerOrders returns one page of the customer's order summaries.
func (s *OrderService) CustomerOrders(userID string, page, size int) (pagination.Page[models.OrderSummary], error) {
	params, err := pagination.New(page, size)
	if err != nil {
		return pagination.Page[models.OrderSummary]{}, err
	}

	orders, total, err := s.repos.Orders.ListByCustomer(userID, params.Offset(), params.Size)
	if err != nil {
		return pagination.Page[models.OrderSummary]{}, classify(err)
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	for i := range orders {
		summaries = append(summaries, orders[i].Summary())
	}
	return pagination.NewPage(params, total, summaries), nil
}

// VendorOrderItems returns one page of orders holding the vendor's products,
// flattened to item details. Product ownership is recomputed per query.
func (s *OrderService) VendorOrderItems(vendorID string, page, size int) (pagination.Page[models.OrderItem], error) {
	params, err := pagination.New(page, size)
	if err != nil {
		return pagination.Page[models.OrderItem]{}, err
	}

	orders, total, err := s.repos.Orders.ListByVendor(vendorID, params.Offset(), params.Size)
	if err != nil {
		return pagination.Page[models.OrderItem]{}, classify(err)
	}

	items := make([]models.OrderItem, 0)
	for i := range orders {
		items = append(items, orders[i].Items...)
	}
	return pagination.NewPage(params, total, items), nil
}

// AdminOrders returns one page of order summaries for the customer with the
// given email.
func (s *OrderService) AdminOrders(customerEmail string, page, size int) (pagination.Page[models.OrderSummary], error) {
	params, err := pagination.New(page, size)
	if err != nil {
		return pagination.Page[models.OrderSummary]{}, err
	}

	user, err := s.repos.Users.GetByEmail(customerEmail)
	if err != nil {
		return pagination.Page[models.OrderSummary]{}, classify(err)
	}

	orders, total, err := s.repos.Orders.ListByCustomer(user.ID, params.Offset(), params.Size)
	if err != nil {
		return pagination.Page[models.OrderSummary]{}, classify(err)
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	for i := range orders {
		summaries = append(summaries, orders[i].Summary())
	}
	return pagination.NewPage(params, total, summaries), nil
}

// OrderDetails returns the full order with items, shipping snapshot and
// frozen prices exactly as stored at placement.
func (s *OrderService) OrderDetails(orderID string) (*models.Order, error) {
	order, err := s.repos.Orders.GetByID(orderID)
	if err != nil {
		return nil, classify(err)
	}
	return order, nil
}

// publish emits an event best-effort after a committed mutation. Publishing
// failures are logged, never surfaced: the store is the source of truth.
func (s *OrderService) publish(eventType string, payload map[string]interface{}) {
	if s.mq == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.mq.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}

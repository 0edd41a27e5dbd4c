package models

import (
	"fmt"
	"strings"
)

// OrderStatus is the shared status vocabulary for orders and order items.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCompleted  OrderStatus = "Completed"
	StatusCancelled  OrderStatus = "Cancelled"
	StatusRefunded   OrderStatus = "Refunded"
	StatusReturned   OrderStatus = "Returned"
)

var orderStatuses = map[string]OrderStatus{
	"pending":    StatusPending,
	"processing": StatusProcessing,
	"shipped":    StatusShipped,
	"delivered":  StatusDelivered,
	"completed":  StatusCompleted,
	"cancelled":  StatusCancelled,
	"refunded":   StatusRefunded,
	"returned":   StatusReturned,
}

// ParseOrderStatus resolves a status string case-insensitively.
// Anything outside the vocabulary is rejected.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status, ok := orderStatuses[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("invalid order status: %s", s)
	}
	return status, nil
}

func (s OrderStatus) String() string {
	return string(s)
}

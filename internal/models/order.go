package models

import "time"

// Order is an immutable record of a placed order. Only Status and
// CancellationReason change after creation; the shipping fields are a
// snapshot of the customer's details at placement time.
type Order struct {
	OrderID         string      `json:"order_id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID      string      `json:"customer_id" gorm:"index;type:varchar(36)"`
	OrderDate       string      `json:"order_date" gorm:"type:varchar(10)"` // yyyy-MM-dd
	Status          OrderStatus `json:"status" gorm:"type:varchar(20)"`
	TotalOrderPrice float64     `json:"total_order_price"`

	// Shipping snapshot
	PhoneNumber string `json:"phone_number"`
	UserName    string `json:"user_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`

	CancellationReason string `json:"cancellation_reason,omitempty"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is one line of an order. Name, image and price are frozen at
// placement so invoices stay accurate when the catalog changes later.
type OrderItem struct {
	OrderItemID string      `json:"order_item_id" gorm:"primaryKey;type:varchar(36)"`
	OrderID     string      `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID   string      `json:"product_id" gorm:"index;type:varchar(36)"`
	ProductName string      `json:"product_name"`
	ImageURI    string      `json:"image_uri"`
	Price       float64     `json:"price"` // discounted unit price at order time
	Quantity    int         `json:"quantity"`
	Size        string      `json:"size"`
	Color       string      `json:"color"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderSummary is the listing projection: one row per order with the first
// item's image as a thumbnail.
type OrderSummary struct {
	OrderID         string      `json:"order_id"`
	ImageURI        string      `json:"image_uri"`
	OrderDate       string      `json:"order_date"`
	Status          OrderStatus `json:"status"`
	TotalOrderPrice float64     `json:"total_order_price"`
}

// Summary projects an order into its listing row.
func (o *Order) Summary() OrderSummary {
	s := OrderSummary{
		OrderID:         o.OrderID,
		OrderDate:       o.OrderDate,
		Status:          o.Status,
		TotalOrderPrice: o.TotalOrderPrice,
	}
	if len(o.Items) > 0 {
		s.ImageURI = o.Items[0].ImageURI
	}
	return s
}

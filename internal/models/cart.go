package models

import "gorm.io/gorm"

// CartItem is one line in a user's cart. The whole cart is cleared when the
// user places an order.
type CartItem struct {
	CartID    string `json:"cart_id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	ProductID string `json:"product_id" gorm:"index;type:varchar(36)" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`

	gorm.Model
}

// CartItemView is the cart line enriched with live product data, returned by
// the cart listing. Price and discount here track the catalog; they are only
// frozen once the line becomes an order item.
type CartItemView struct {
	CartID      string  `json:"cart_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	ImageURI    string  `json:"image_uri"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Quantity    int     `json:"quantity"`
}

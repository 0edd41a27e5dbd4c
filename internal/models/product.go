package models

import "gorm.io/gorm"

// Product represents a catalog entry owned by a vendor.
type Product struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VendorID      string  `json:"vendor_id" gorm:"index;type:varchar(36)" validate:"required"`
	Name          string  `json:"name" validate:"required,min=3,max=100"`
	Brand         string  `json:"brand" validate:"omitempty,max=100"`
	Description   string  `json:"description" validate:"omitempty,max=500"`
	Category      string  `json:"category" validate:"omitempty,max=100"`
	ImageURI      string  `json:"image_uri"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Discount      float64 `json:"discount" validate:"gte=0,lte=100"` // percentage
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`

	// Products start hidden and are published explicitly. Hiding doubles as
	// a soft delete for listings.
	IsVisible bool `json:"is_visible"`

	Sizes  StringList `json:"sizes" gorm:"type:text"`
	Colors StringList `json:"colors" gorm:"type:text"`

	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// UnitPrice is the discounted price a single unit sells for. Order items
// freeze this value at placement time.
func (p *Product) UnitPrice() float64 {
	return p.Price - p.Price*p.Discount/100
}

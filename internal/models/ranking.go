package models

// Ranking is a single rating/comment a customer left for a vendor.
// One row per submission; averages and sums are computed on read.
type Ranking struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VendorID   string  `json:"vendor_id" gorm:"index;type:varchar(36)" validate:"required"`
	CustomerID string  `json:"customer_id" gorm:"index;type:varchar(36)"`
	Rating     float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string  `json:"comment" validate:"omitempty,max=500"`

	// Client-supplied timestamp, kept as the original record stores it.
	CreatedAt string `json:"created_at"`
}

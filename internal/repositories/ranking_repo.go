package repositories

import "gerai/internal/models"

// RankingRepository defines the interface for vendor rating data access.
type RankingRepository interface {
	Create(ranking *models.Ranking) error
	ListByVendor(vendorID string) ([]models.Ranking, error)
	// AverageByVendor returns 0 when the vendor has no ratings yet.
	AverageByVendor(vendorID string) (float64, error)
	// TotalSalesByVendor sums price*quantity over items of Completed orders
	// that reference the vendor's products.
	TotalSalesByVendor(vendorID string) (float64, error)
}

package repositories

import (
	"fmt"

	"gerai/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRankingRepository is a GORM implementation of RankingRepository.
type GORMRankingRepository struct {
	db *gorm.DB
}

// NewGORMRankingRepository creates a new instance of GORMRankingRepository.
func NewGORMRankingRepository(db *gorm.DB) *GORMRankingRepository {
	return &GORMRankingRepository{db: db}
}

// Create saves one rating row.
func (r *GORMRankingRepository) Create(ranking *models.Ranking) error {
	if ranking.ID == "" {
		ranking.ID = uuid.New().String()
	}
	if err := r.db.Create(ranking).Error; err != nil {
		return fmt.Errorf("failed to create ranking: %w", err)
	}
	return nil
}

// ListByVendor returns every rating left for a vendor.
func (r *GORMRankingRepository) ListByVendor(vendorID string) ([]models.Ranking, error) {
	var rankings []models.Ranking
	if err := r.db.Where("vendor_id = ?", vendorID).Find(&rankings).Error; err != nil {
		return nil, fmt.Errorf("failed to list rankings for vendor %s: %w", vendorID, err)
	}
	return rankings, nil
}

// AverageByVendor computes the vendor's average rating, 0 with no ratings.
func (r *GORMRankingRepository) AverageByVendor(vendorID string) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Ranking{}).
		Where("vendor_id = ?", vendorID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to average rankings for vendor %s: %w", vendorID, err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// TotalSalesByVendor sums revenue from Completed orders over the vendor's
// products. Item prices are the frozen order-time prices.
func (r *GORMRankingRepository) TotalSalesByVendor(vendorID string) (float64, error) {
	var total *float64
	err := r.db.Model(&models.OrderItem{}).
		Select("SUM(order_items.price * order_items.quantity)").
		Joins("JOIN orders ON orders.order_id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.status = ?", models.StatusCompleted).
		Where("products.vendor_id = ?", vendorID).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to total sales for vendor %s: %w", vendorID, err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

package services

import (
	"fmt"

	"gerai/internal/apperrors"
	"gerai/internal/models"
	"gerai/internal/repositories"
)

// RankingService handles vendor rating submissions and the read-side
// aggregates over them.
type RankingService struct {
	rankingRepo repositories.RankingRepository
	userRepo    repositories.UserRepository
}

// NewRankingService creates a new RankingService.
func NewRankingService(rankingRepo repositories.RankingRepository, userRepo repositories.UserRepository) *RankingService {
	return &RankingService{
		rankingRepo: rankingRepo,
		userRepo:    userRepo,
	}
}

// RankingRequest is the payload for submitting a vendor rating.
type RankingRequest struct {
	VendorID  string  `json:"vendor_id" validate:"required"`
	Rating    float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string  `json:"comment" validate:"omitempty,max=500"`
	CreatedAt string  `json:"created_at"`
}

// AddRanking stores one rating row for a vendor. One row per submission.
func (s *RankingService) AddRanking(customerID string, req RankingRequest) error {
	if err := s.requireVendor(req.VendorID); err != nil {
		return err
	}
	return classify(s.rankingRepo.Create(&models.Ranking{
		VendorID:   req.VendorID,
		CustomerID: customerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  req.CreatedAt,
	}))
}

// VendorAverage returns the vendor's average rating, 0 with no ratings.
func (s *RankingService) VendorAverage(vendorID string) (float64, error) {
	if err := s.requireVendor(vendorID); err != nil {
		return 0, err
	}
	avg, err := s.rankingRepo.AverageByVendor(vendorID)
	if err != nil {
		return 0, classify(err)
	}
	return avg, nil
}

// VendorTotalSales sums revenue of the vendor's items on Completed orders.
func (s *RankingService) VendorTotalSales(vendorID string) (float64, error) {
	if err := s.requireVendor(vendorID); err != nil {
		return 0, err
	}
	total, err := s.rankingRepo.TotalSalesByVendor(vendorID)
	if err != nil {
		return 0, classify(err)
	}
	return total, nil
}

// VendorRankings lists every rating left for a vendor.
func (s *RankingService) VendorRankings(vendorID string) ([]models.Ranking, error) {
	if err := s.requireVendor(vendorID); err != nil {
		return nil, err
	}
	rankings, err := s.rankingRepo.ListByVendor(vendorID)
	if err != nil {
		return nil, classify(err)
	}
	return rankings, nil
}

// requireVendor checks the id belongs to an account with the Vendor role.
func (s *RankingService) requireVendor(vendorID string) error {
	user, err := s.userRepo.GetByID(vendorID)
	if err != nil {
		return classify(err)
	}
	if user.Role != models.RoleVendor {
		return fmt.Errorf("vendor with ID %s: %w", vendorID, apperrors.ErrNotFound)
	}
	return nil
}

package handlers

import (
	"log"

	"gerai/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RankingHandler handles HTTP requests for vendor ratings.
type RankingHandler struct {
	service  *services.RankingService
	validate *validator.Validate
}

// NewRankingHandler creates a new RankingHandler.
func NewRankingHandler(service *services.RankingService) *RankingHandler {
	return &RankingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the ranking routes. The router must already be
// wrapped with the auth middleware.
func (h *RankingHandler) RegisterRoutes(router fiber.Router) {
	rankingRoutes := router.Group("/rankings")
	rankingRoutes.Post("/", h.HandleAddRanking)
	rankingRoutes.Get("/vendor/:vendorId", h.HandleVendorRankings)
	rankingRoutes.Get("/vendor/:vendorId/average", h.HandleVendorAverage)
	rankingRoutes.Get("/vendor/:vendorId/sales", h.HandleVendorTotalSales)
}

// HandleAddRanking stores a rating the caller leaves for a vendor.
func (h *RankingHandler) HandleAddRanking(c *fiber.Ctx) error {
	var req services.RankingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.AddRanking(currentUserID(c), req); err != nil {
		log.Printf("Error adding ranking: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Ranking saved successfully"})
}

// HandleVendorRankings lists all ratings for a vendor.
func (h *RankingHandler) HandleVendorRankings(c *fiber.Ctx) error {
	rankings, err := h.service.VendorRankings(c.Params("vendorId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rankings)
}

// HandleVendorAverage returns the vendor's average rating.
func (h *RankingHandler) HandleVendorAverage(c *fiber.Ctx) error {
	avg, err := h.service.VendorAverage(c.Params("vendorId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"average_rating": avg})
}

// HandleVendorTotalSales returns the vendor's revenue over completed
// orders.
func (h *RankingHandler) HandleVendorTotalSales(c *fiber.Ctx) error {
	total, err := h.service.VendorTotalSales(c.Params("vendorId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total_sales": total})
}

package handlers

import (
	"log"

	"gerai/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the caller's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes. The router must already be
// wrapped with the auth middleware.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetItems)
	cartRoutes.Post("/", h.HandleAddProduct)
	cartRoutes.Patch("/:cartId/increase", h.HandleIncreaseQuantity)
	cartRoutes.Patch("/:cartId/decrease", h.HandleDecreaseQuantity)
	cartRoutes.Delete("/:cartId", h.HandleRemoveItem)
}

// HandleGetItems returns the caller's cart snapshot.
func (h *CartHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.GetItems(currentUserID(c))
	if err != nil {
		log.Printf("Error getting cart items: %v", err)
		return respondError(c, err)
	}
	return c.JSON(items)
}

// HandleAddProduct puts a product into the caller's cart.
func (h *CartHandler) HandleAddProduct(c *fiber.Ctx) error {
	var req services.CartAddRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.AddProduct(currentUserID(c), req); err != nil {
		log.Printf("Error adding product to cart: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product added to cart"})
}

// HandleIncreaseQuantity bumps a cart line by one.
func (h *CartHandler) HandleIncreaseQuantity(c *fiber.Ctx) error {
	if err := h.service.IncreaseQuantity(c.Params("cartId")); err != nil {
		log.Printf("Error increasing cart quantity: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product quantity increased"})
}

// HandleDecreaseQuantity lowers a cart line by one, removing it at zero.
func (h *CartHandler) HandleDecreaseQuantity(c *fiber.Ctx) error {
	if err := h.service.DecreaseQuantity(c.Params("cartId")); err != nil {
		log.Printf("Error decreasing cart quantity: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product quantity decreased"})
}

// HandleRemoveItem deletes a cart line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.service.RemoveItem(c.Params("cartId")); err != nil {
		log.Printf("Error removing cart item: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product removed from cart"})
}

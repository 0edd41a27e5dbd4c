package handlers

import (
	"log"

	"gerai/internal/middleware"
	"gerai/internal/models"
	"gerai/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for the order lifecycle.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes. The router must already be
// wrapped with the auth middleware.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandlePlaceOrder)
	orderRoutes.Get("/customer", h.HandleCustomerOrders)
	orderRoutes.Get("/vendor", middleware.RoleRequired(models.RoleVendor), h.HandleVendorOrderItems)
	orderRoutes.Get("/admin", middleware.RoleRequired(models.RoleAdmin, models.RoleCSR), h.HandleAdminOrders)
	orderRoutes.Get("/:id", h.HandleOrderDetails)
	orderRoutes.Patch("/:id/status", middleware.RoleRequired(models.RoleAdmin, models.RoleCSR, models.RoleVendor), h.HandleSetOrderStatus)
	orderRoutes.Patch("/items/:itemId/status", middleware.RoleRequired(models.RoleAdmin, models.RoleCSR, models.RoleVendor), h.HandleSetOrderItemStatus)
	orderRoutes.Post("/:id/cancel", middleware.RoleRequired(models.RoleAdmin, models.RoleCSR), h.HandleCancelOrder)
}

// PlaceOrderRequest carries the order date; everything else comes from the
// user's cart and account.
type PlaceOrderRequest struct {
	OrderDate string `json:"order_date" validate:"required,len=10"` // yyyy-MM-dd
}

// HandlePlaceOrder converts the caller's cart into an order.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	orderID, err := h.service.PlaceOrder(currentUserID(c), req.OrderDate)
	if err != nil {
		log.Printf("Error placing order: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Order created successfully",
		"order_id": orderID,
	})
}

// StatusUpdateRequest carries the new status string for order and
// order-item transitions.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleSetOrderStatus overwrites an order's status.
func (h *OrderHandler) HandleSetOrderStatus(c *fiber.Ctx) error {
	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.SetOrderStatus(c.Params("id"), req.Status); err != nil {
		log.Printf("Error updating order status for order %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order status updated successfully"})
}

// HandleSetOrderItemStatus transitions one order item, adjusting stock per
// the reservation rules.
func (h *OrderHandler) HandleSetOrderItemStatus(c *fiber.Ctx) error {
	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.SetOrderItemStatus(c.Params("itemId"), req.Status); err != nil {
		log.Printf("Error updating order item status for item %s: %v", c.Params("itemId"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order item status updated successfully"})
}

// CancelOrderRequest carries the mandatory cancellation reason.
type CancelOrderRequest struct {
	CancellationReason string `json:"cancellation_reason" validate:"required,min=2,max=200"`
}

// HandleCancelOrder cancels an order and restores reserved stock.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	var req CancelOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.CancelOrder(c.Params("id"), req.CancellationReason); err != nil {
		log.Printf("Error cancelling order %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order cancelled successfully"})
}

// HandleCustomerOrders lists the caller's own orders.
func (h *OrderHandler) HandleCustomerOrders(c *fiber.Ctx) error {
	page, err := h.service.CustomerOrders(currentUserID(c), c.QueryInt("page", 1), c.QueryInt("size", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// HandleVendorOrderItems lists order items referencing the vendor's
// products.
func (h *OrderHandler) HandleVendorOrderItems(c *fiber.Ctx) error {
	page, err := h.service.VendorOrderItems(currentUserID(c), c.QueryInt("page", 1), c.QueryInt("size", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// HandleAdminOrders lists orders for the customer named by email.
func (h *OrderHandler) HandleAdminOrders(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "email query parameter is required",
		})
	}
	page, err := h.service.AdminOrders(email, c.QueryInt("page", 1), c.QueryInt("size", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// HandleOrderDetails returns one order with its frozen item snapshot.
func (h *OrderHandler) HandleOrderDetails(c *fiber.Ctx) error {
	order, err := h.service.OrderDetails(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

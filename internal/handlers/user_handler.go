package handlers

import (
	"log"

	"gerai/internal/middleware"
	"gerai/internal/models"
	"gerai/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for account management.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the account routes. The router must already be
// wrapped with the auth middleware.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/me", h.HandleGetProfile)
	userRoutes.Put("/me", h.HandleUpdateProfile)
	userRoutes.Put("/me/shipping", h.HandleUpdateShipping)
	userRoutes.Put("/me/email", h.HandleUpdateEmail)
	userRoutes.Put("/me/password", h.HandleUpdatePassword)
	userRoutes.Delete("/me", h.HandleDelete)
	userRoutes.Patch("/:id/active", middleware.RoleRequired(models.RoleAdmin), h.HandleSetActive)
}

// HandleGetProfile returns the caller's account record.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.service.GetProfile(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	user.Password = ""
	return c.JSON(user)
}

// HandleUpdateProfile overwrites the caller's profile fields.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req services.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdateProfile(currentUserID(c), req); err != nil {
		log.Printf("Error updating profile: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Profile updated successfully"})
}

// HandleUpdateShipping overwrites the caller's shipping details.
func (h *UserHandler) HandleUpdateShipping(c *fiber.Ctx) error {
	var req services.ShippingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdateShippingDetails(currentUserID(c), req); err != nil {
		log.Printf("Error updating shipping details: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shipping details updated successfully"})
}

// EmailUpdateRequest carries the new account email.
type EmailUpdateRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HandleUpdateEmail changes the caller's email.
func (h *UserHandler) HandleUpdateEmail(c *fiber.Ctx) error {
	var req EmailUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdateEmail(currentUserID(c), req.Email); err != nil {
		log.Printf("Error updating email: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Email updated successfully"})
}

// PasswordUpdateRequest carries the current and replacement passwords.
type PasswordUpdateRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// HandleUpdatePassword rotates the caller's password.
func (h *UserHandler) HandleUpdatePassword(c *fiber.Ctx) error {
	var req PasswordUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdatePassword(currentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		log.Printf("Error updating password: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}

// ActiveRequest flips the account's active flag.
type ActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// HandleSetActive activates or deactivates an account. Admin only.
func (h *UserHandler) HandleSetActive(c *fiber.Ctx) error {
	var req ActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.SetActive(c.Params("id"), req.IsActive); err != nil {
		log.Printf("Error setting active flag for user %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User status updated successfully"})
}

// HandleDelete removes the caller's account.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(currentUserID(c)); err != nil {
		log.Printf("Error deleting user: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

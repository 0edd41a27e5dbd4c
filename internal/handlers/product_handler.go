package handlers

import (
	"log"

	"gerai/internal/middleware"
	"gerai/internal/models"
	"gerai/internal/services"

	"gerai/pkg/blobstore"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	blobs    blobstore.Store
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, blobs blobstore.Store) *ProductHandler {
	return &ProductHandler{
		service:  service,
		blobs:    blobs,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes. The router must already be
// wrapped with the auth middleware; read endpoints are open to any
// authenticated role.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListVisible)
	productRoutes.Get("/search", h.HandleSearch)
	productRoutes.Get("/category/:category", h.HandleListByCategory)
	productRoutes.Get("/vendor", middleware.RoleRequired(models.RoleVendor), h.HandleListByVendor)
	productRoutes.Get("/hidden", middleware.RoleRequired(models.RoleAdmin), h.HandleListHidden)
	productRoutes.Get("/:id", h.HandleGetByID)
	productRoutes.Post("/", middleware.RoleRequired(models.RoleVendor), h.HandleCreate)
	productRoutes.Put("/:id", middleware.RoleRequired(models.RoleVendor), h.HandleUpdate)
	productRoutes.Patch("/:id/stock", middleware.RoleRequired(models.RoleVendor), h.HandleUpdateStock)
	productRoutes.Patch("/:id/visibility", middleware.RoleRequired(models.RoleVendor, models.RoleAdmin), h.HandleSetVisibility)
	productRoutes.Post("/:id/image", middleware.RoleRequired(models.RoleVendor), h.HandleUploadImage)
	productRoutes.Delete("/:id", middleware.RoleRequired(models.RoleVendor, models.RoleAdmin), h.HandleDelete)
}

// HandleListVisible returns one page of published products.
func (h *ProductHandler) HandleListVisible(c *fiber.Ctx) error {
	page, err := h.service.ListVisible(c.QueryInt("page", 1), c.QueryInt("size", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// HandleSearch matches published products on name or description.
func (h *ProductHandler) HandleSearch(c *fiber.Ctx) error {
	page, err := h.service.Search(c.Query("q"), c.QueryInt("page", 1), c.QueryInt("size", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// HandleListByCategory returns published products in a category.
func (h *ProductHandler) HandleListByCategory(c *fiber.Ctx) error {
	page, err := h.service.ListByCategory(c.Params("category"), c.QueryInt("page", 1), c.QueryInt("size", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// HandleListByVendor returns the caller's own products, hidden included.
func (h *ProductHandler) HandleListByVendor(c *fiber.Ctx) error {
	page, err := h.service.ListByVendor(currentUserID(c), c.QueryInt("page", 1), c.QueryInt("size", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// HandleListHidden returns unpublished products for review.
func (h *ProductHandler) HandleListHidden(c *fiber.Ctx) error {
	page, err := h.service.ListHidden(c.QueryInt("page", 1), c.QueryInt("size", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// HandleGetByID returns a single product.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleCreate adds a product owned by the calling vendor.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.VendorID = currentUserID(c)
	if err := h.validate.Struct(product); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.CreateProduct(currentUserID(c), &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdate overwrites a product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.ID = c.Params("id")
	if err := h.validate.Struct(product); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		return respondError(c, err)
	}
	return c.JSON(product)
}

// StockUpdateRequest sets the absolute stock level.
type StockUpdateRequest struct {
	StockQuantity int `json:"stock_quantity" validate:"gte=0"`
}

// HandleUpdateStock sets a product's stock quantity.
func (h *ProductHandler) HandleUpdateStock(c *fiber.Ctx) error {
	var req StockUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdateStock(c.Params("id"), req.StockQuantity); err != nil {
		log.Printf("Error updating stock for product %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product stock updated successfully"})
}

// VisibilityRequest publishes or hides a product.
type VisibilityRequest struct {
	IsVisible bool `json:"is_visible"`
}

// HandleSetVisibility publishes or hides a product.
func (h *ProductHandler) HandleSetVisibility(c *fiber.Ctx) error {
	var req VisibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.SetVisibility(c.Params("id"), req.IsVisible); err != nil {
		log.Printf("Error setting visibility for product %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product visibility updated successfully"})
}

// HandleUploadImage stores a product image in the blob store and saves the
// resulting URI on the product.
func (h *ProductHandler) HandleUploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "image file is required",
			"error":   err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not open uploaded file",
			"error":   err.Error(),
		})
	}
	defer file.Close()

	uri, err := h.blobs.Upload(fileHeader.Filename, file)
	if err != nil {
		log.Printf("Error uploading image for product %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store image",
			"error":   err.Error(),
		})
	}

	if err := h.service.SetImage(c.Params("id"), uri); err != nil {
		log.Printf("Error saving image URI for product %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":   "Product image uploaded successfully",
		"image_uri": uri,
	})
}

// HandleDelete removes a product from the catalog.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		log.Printf("Error deleting product %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

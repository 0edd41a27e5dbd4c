package services

import (
	"errors"
	"fmt"

	"gerai/internal/apperrors"
	"gerai/internal/models"
	"gerai/internal/repositories"
)

// CartService handles business logic for cart line items. Quantity bounds
// against stock are enforced opportunistically on every read and mutation,
// not transactionally; the hard reconciliation happens in the order
// lifecycle.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CartAddRequest is the payload for adding a product to the cart.
type CartAddRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// AddProduct puts a product into the user's cart. If the product is already
// in the cart its quantity goes up by one; otherwise a new line is created
// with the requested quantity.
func (s *CartService) AddProduct(userID string, req CartAddRequest) error {
	product, err := s.productRepo.GetByID(req.ProductID)
	if err != nil {
		return classify(err)
	}

	if req.Quantity > product.StockQuantity {
		return fmt.Errorf("%w: not a valid stock quantity", apperrors.ErrInvalidInput)
	}

	existing, err := s.cartRepo.FindByUserAndProduct(userID, req.ProductID)
	if err == nil {
		existing.Quantity++
		return classify(s.cartRepo.Update(existing))
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return classify(err)
	}

	return classify(s.cartRepo.Create(&models.CartItem{
		UserID:    userID,
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	}))
}

// IncreaseQuantity bumps a cart line by one, bounded by available stock.
func (s *CartService) IncreaseQuantity(cartID string) error {
	item, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return classify(err)
	}

	product, err := s.productRepo.GetByID(item.ProductID)
	if err != nil {
		return classify(err)
	}
	if item.Quantity >= product.StockQuantity {
		return fmt.Errorf("%w: not enough stock available", apperrors.ErrInvalidInput)
	}

	item.Quantity++
	return classify(s.cartRepo.Update(item))
}

// DecreaseQuantity lowers a cart line by one; the line is removed when it
// hits zero.
func (s *CartService) DecreaseQuantity(cartID string) error {
	item, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return classify(err)
	}

	if item.Quantity > 1 {
		item.Quantity--
		return classify(s.cartRepo.Update(item))
	}
	return classify(s.cartRepo.Delete(item.CartID))
}

// RemoveItem deletes a cart line outright.
func (s *CartService) RemoveItem(cartID string) error {
	return classify(s.cartRepo.Delete(cartID))
}

// GetItems returns the user's cart enriched with live product data. Lines
// whose product vanished are dropped, quantities are clamped to current
// stock, and stale size/color choices fall back to what the product still
// offers.
func (s *CartService) GetItems(userID string) ([]models.CartItemView, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, classify(err)
	}

	views := make([]models.CartItemView, 0, len(items))
	for i := range items {
		item := &items[i]

		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// The product left the catalog; the line goes with it.
				if delErr := s.cartRepo.Delete(item.CartID); delErr != nil {
					return nil, classify(delErr)
				}
				continue
			}
			return nil, classify(err)
		}

		changed := false
		if item.Quantity > product.StockQuantity {
			item.Quantity = product.StockQuantity
			changed = true
		}
		if !contains(product.Sizes, item.Size) {
			item.Size = firstOr(product.Sizes, "Unknown")
			changed = true
		}
		if !contains(product.Colors, item.Color) {
			item.Color = firstOr(product.Colors, "Unknown")
			changed = true
		}
		if changed {
			if err := s.cartRepo.Update(item); err != nil {
				return nil, classify(err)
			}
		}

		views = append(views, models.CartItemView{
			CartID:      item.CartID,
			ProductID:   item.ProductID,
			ProductName: product.Name,
			ImageURI:    product.ImageURI,
			Price:       product.Price,
			Discount:    product.Discount,
			Size:        item.Size,
			Color:       item.Color,
			Quantity:    item.Quantity,
		})
	}
	return views, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func firstOr(list []string, fallback string) string {
	if len(list) > 0 {
		return list[0]
	}
	return fallback
}

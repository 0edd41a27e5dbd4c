package services

import (
	"gerai/internal/models"
	"gerai/internal/pagination"
	"gerai/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// CreateProduct adds a product for the given vendor. New products start
// hidden until the vendor publishes them.
func (s *ProductService) CreateProduct(vendorID string, product *models.Product) error {
	product.VendorID = vendorID
	product.IsVisible = false
	return classify(s.repo.Create(product))
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, classify(err)
	}
	return product, nil
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return classify(s.repo.Update(product))
}

// UpdateStock sets the absolute stock quantity for a product.
func (s *ProductService) UpdateStock(id string, quantity int) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return classify(err)
	}
	product.StockQuantity = quantity
	return classify(s.repo.Update(product))
}

// SetVisibility publishes or hides a product. Hiding doubles as a soft
// delete for customer listings.
func (s *ProductService) SetVisibility(id string, visible bool) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return classify(err)
	}
	product.IsVisible = visible
	return classify(s.repo.Update(product))
}

// SetImage stores the uploaded image URI on the product.
func (s *ProductService) SetImage(id, imageURI string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return classify(err)
	}
	product.ImageURI = imageURI
	return classify(s.repo.Update(product))
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return classify(s.repo.Delete(id))
}

// ListVisible returns one page of customer-visible products.
func (s *ProductService) ListVisible(page, size int) (pagination.Page[models.Product], error) {
	return s.paged(page, size, s.repo.ListVisible)
}

// ListHidden returns one page of unpublished products.
func (s *ProductService) ListHidden(page, size int) (pagination.Page[models.Product], error) {
	return s.paged(page, size, s.repo.ListHidden)
}

// Search returns one page of visible products matching the query on name or
// description.
func (s *ProductService) Search(query string, page, size int) (pagination.Page[models.Product], error) {
	return s.paged(page, size, func(offset, limit int) ([]models.Product, int64, error) {
		return s.repo.Search(query, offset, limit)
	})
}

// ListByCategory returns one page of visible products in a category.
func (s *ProductService) ListByCategory(category string, page, size int) (pagination.Page[models.Product], error) {
	return s.paged(page, size, func(offset, limit int) ([]models.Product, int64, error) {
		return s.repo.ListByCategory(category, offset, limit)
	})
}

// ListByVendor returns one page of the vendor's own products, hidden
// included.
func (s *ProductService) ListByVendor(vendorID string, page, size int) (pagination.Page[models.Product], error) {
	return s.paged(page, size, func(offset, limit int) ([]models.Product, int64, error) {
		return s.repo.ListByVendor(vendorID, offset, limit)
	})
}

func (s *ProductService) paged(page, size int, list func(offset, limit int) ([]models.Product, int64, error)) (pagination.Page[models.Product], error) {
	params, err := pagination.New(page, size)
	if err != nil {
		return pagination.Page[models.Product]{}, err
	}
	products, total, err := list(params.Offset(), params.Size)
	if err != nil {
		return pagination.Page[models.Product]{}, classify(err)
	}
	return pagination.NewPage(params, total, products), nil
}

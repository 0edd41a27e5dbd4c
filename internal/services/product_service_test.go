package services_test

import (
	"errors"
	"fmt"
	"testing"

	"gerai/internal/apperrors"
	"gerai/internal/models"
	"gerai/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// productRepoMock is a testify mock of repositories.ProductRepository.
type productRepoMock struct {
	mock.Mock
}

func (m *productRepoMock) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *productRepoMock) GetByIDForUpdate(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *productRepoMock) Create(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *productRepoMock) Update(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *productRepoMock) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *productRepoMock) ListVisible(offset, limit int) ([]models.Product, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *productRepoMock) ListHidden(offset, limit int) ([]models.Product, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *productRepoMock) Search(query string, offset, limit int) ([]models.Product, int64, error) {
	args := m.Called(query, offset, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *productRepoMock) ListByCategory(category string, offset, limit int) ([]models.Product, int64, error) {
	args := m.Called(category, offset, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *productRepoMock) ListByVendor(vendorID string, offset, limit int) ([]models.Product, int64, error) {
	args := m.Called(vendorID, offset, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func TestCreateProduct(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo)

	repo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		// The service owns the vendor binding and the initial visibility.
		return p.VendorID == "vendor-1" && !p.IsVisible
	})).Return(nil)

	product := &models.Product{Name: "kaos", Price: 100, IsVisible: true}
	err := service.CreateProduct("vendor-1", product)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetProductByID_NotFound(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo)

	repo.On("GetByID", "ghost").Return(nil, fmt.Errorf("product: %w", apperrors.ErrNotFound))

	_, err := service.GetProductByID("ghost")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	repo.AssertExpectations(t)
}

func TestUpdateStock(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo)

	stored := &models.Product{ID: "p-1", Name: "kaos", StockQuantity: 5}
	repo.On("GetByID", "p-1").Return(stored, nil)
	repo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "p-1" && p.StockQuantity == 42
	})).Return(nil)

	err := service.UpdateStock("p-1", 42)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSetVisibility(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo)

	stored := &models.Product{ID: "p-1", IsVisible: false}
	repo.On("GetByID", "p-1").Return(stored, nil)
	repo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "p-1" && p.IsVisible
	})).Return(nil)

	err := service.SetVisibility("p-1", true)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSetImage(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo)

	stored := &models.Product{ID: "p-1"}
	repo.On("GetByID", "p-1").Return(stored, nil)
	repo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ImageURI == "/uploads/abc.jpg"
	})).Return(nil)

	err := service.SetImage("p-1", "/uploads/abc.jpg")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListVisible_PassesOffsetAndLimit(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo)

	products := []models.Product{{ID: "p-1"}, {ID: "p-2"}}
	repo.On("ListVisible", 10, 5).Return(products, int64(12), nil)

	page, err := service.ListVisible(3, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), page.TotalCount)
	assert.Equal(t, 3, page.PageNumber)
	assert.Equal(t, 5, page.PageSize)
	assert.Len(t, page.Items, 2)
	repo.AssertExpectations(t)
}

func TestListVisible_InvalidPagination(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo)

	_, err := service.ListVisible(0, 10)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	// The repository is never reached with bad paging input.
	repo.AssertNotCalled(t, "ListVisible", mock.Anything, mock.Anything)
}

func TestSearch(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo)

	repo.On("Search", "batik", 0, 10).Return([]models.Product{{ID: "p-1", Name: "batik solo"}}, int64(1), nil)

	page, err := service.Search("batik", 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)
	assert.Equal(t, "batik solo", page.Items[0].Name)
	repo.AssertExpectations(t)
}

func TestDeleteProduct(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo)

	repo.On("Delete", "p-1").Return(nil)
	assert.NoError(t, service.DeleteProduct("p-1"))

	repo.On("Delete", "ghost").Return(fmt.Errorf("product: %w", apperrors.ErrNotFound))
	err := service.DeleteProduct("ghost")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	repo.AssertExpectations(t)
}

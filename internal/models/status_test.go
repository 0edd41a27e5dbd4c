package models_test

import (
	"testing"

	"gerai/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	// Exact names parse
	status, err := models.ParseOrderStatus("Pending")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, status)

	// Case-insensitive
	status, err = models.ParseOrderStatus("delivered")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, status)

	status, err = models.ParseOrderStatus("CANCELLED")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, status)

	// Surrounding whitespace is tolerated
	status, err = models.ParseOrderStatus("  Shipped ")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusShipped, status)
}

func TestParseOrderStatus_Invalid(t *testing.T) {
	for _, raw := range []string{"Shiped", "", "Unknown", "pending2"} {
		_, err := models.ParseOrderStatus(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestProductUnitPrice(t *testing.T) {
	p := models.Product{Price: 100, Discount: 10}
	assert.InDelta(t, 90.0, p.UnitPrice(), 1e-9)

	p = models.Product{Price: 50, Discount: 0}
	assert.InDelta(t, 50.0, p.UnitPrice(), 1e-9)
}

func TestOrderSummary(t *testing.T) {
	order := models.Order{
		OrderID:         "o-1",
		OrderDate:       "2024-05-01",
		Status:          models.StatusPending,
		TotalOrderPrice: 230,
		Items: []models.OrderItem{
			{ImageURI: "img-a"},
			{ImageURI: "img-b"},
		},
	}
	s := order.Summary()
	assert.Equal(t, "o-1", s.OrderID)
	assert.Equal(t, "img-a", s.ImageURI) // first item's image is the thumbnail

	empty := models.Order{OrderID: "o-2"}
	assert.Equal(t, "", empty.Summary().ImageURI)
}

package pagination_test

import (
	"errors"
	"testing"

	"gerai/internal/apperrors"
	"gerai/internal/pagination"

	"github.com/stretchr/testify/assert"
)

func TestNew_RejectsNonPositive(t *testing.T) {
	cases := []struct{ page, size int }{
		{0, 10},
		{1, 0},
		{0, 0},
		{-1, 5},
		{5, -1},
	}
	for _, tc := range cases {
		_, err := pagination.New(tc.page, tc.size)
		assert.Error(t, err, "page=%d size=%d", tc.page, tc.size)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	}
}

func TestOffset(t *testing.T) {
	p, err := pagination.New(1, 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, p.Offset())

	p, err = pagination.New(3, 25)
	assert.NoError(t, err)
	assert.Equal(t, 50, p.Offset())
}

func TestNewPage_NeverNilItems(t *testing.T) {
	p, _ := pagination.New(2, 5)
	page := pagination.NewPage[string](p, 12, nil)
	assert.NotNil(t, page.Items)
	assert.Len(t, page.Items, 0)
	assert.Equal(t, int64(12), page.TotalCount)
	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 5, page.PageSize)
}

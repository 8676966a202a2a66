package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateSlicesSnapshot(t *testing.T) {
	items := make([]int, 0, 35)
	for i := 0; i < 35; i++ {
		items = append(items, i)
	}

	result := Paginate(items, &PaginationParams{Page: 2, PerPage: 15})
	assert.Len(t, result.Items, 15)
	assert.Equal(t, 15, result.Items[0])
	assert.Equal(t, int64(35), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrev)

	last := Paginate(items, &PaginationParams{Page: 3, PerPage: 15})
	assert.Len(t, last.Items, 5)
	assert.False(t, last.Pagination.HasNext)
}

func TestPaginateBeyondEnd(t *testing.T) {
	result := Paginate([]string{"a", "b"}, &PaginationParams{Page: 9, PerPage: 15})
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(2), result.Pagination.Total)
}

func TestPaginateNormalizesParams(t *testing.T) {
	result := Paginate([]int{1, 2, 3}, &PaginationParams{Page: -1, PerPage: 0})
	assert.Equal(t, 1, result.Pagination.CurrentPage)
	assert.Equal(t, 15, result.Pagination.PerPage)
	assert.Len(t, result.Items, 3)

	capped := Paginate([]int{1}, &PaginationParams{Page: 1, PerPage: 5000})
	assert.Equal(t, 100, capped.Pagination.PerPage)
}

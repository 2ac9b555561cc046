package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 2, TotalPages(15, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestNewPagination_SecondPage(t *testing.T) {
	p := NewPagination(15, 2, 10)
	assert.Equal(t, uint64(15), p.TotalCount)
	assert.Equal(t, 2, p.TotalPages)

	f := Filter{Page: 2, PerPage: 10, Offset: 10}
	assert.Equal(t, 19, f.RangeEnd())
}

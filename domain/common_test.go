package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 0.3, Round(0.1+0.2))
	assert.Equal(t, 1.2346, Round(1.23456))
	assert.Equal(t, -1.2346, Round(-1.23456))
	assert.Equal(t, 14.0, Round(20.0-6.0))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 45)
	assert.Equal(t, int64(3), p.TotalPages)

	empty := NewPagination(1, 20, 0)
	assert.Equal(t, int64(1), empty.TotalPages)
}

func TestAppErrorMessage(t *testing.T) {
	err := NewValidationError("Invalid payload", "name is required", "unit must be one of: pcs g kg ml l")
	assert.Equal(t, "Invalid payload: name is required; unit must be one of: pcs g kg ml l", err.Error())

	bare := NewNotFoundError("Recipe not found")
	assert.Equal(t, "Recipe not found", bare.Error())
}

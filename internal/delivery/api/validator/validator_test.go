package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string          `json:"name" validate:"notblank"`
	Units    int             `json:"required_units" validate:"min=1"`
	Price    decimal.Decimal `json:"price" validate:"nonnegative"`
	Platform string          `json:"plan,omitempty" validate:"omitempty,oneof=monthly yearly"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Name: "valve", Units: 1, Price: decimal.RequireFromString("0")}))

	err := v.Validate(&sample{Name: "   ", Units: 0, Price: decimal.NewFromInt(-5), Platform: "weekly"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "required_units must be at least 1")
	assert.Contains(t, err.Error(), "price must not be negative")
	assert.Contains(t, err.Error(), "plan must be one of monthly yearly")
}

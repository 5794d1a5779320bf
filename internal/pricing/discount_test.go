package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		discount *decimal.Decimal
		want     *int
	}{
		{"quarter off", "100", decPtr("75"), intPtr(25)},
		{"no discount", "50", nil, nil},
		{"zero base", "0", decPtr("0"), nil},
		{"zero discount", "80", decPtr("0"), intPtr(100)},
		{"rounds half up", "3", decPtr("2.90"), intPtr(3)},   // 3.33...%
		{"rounds half up 2", "8", decPtr("7.80"), intPtr(3)}, // 2.5%
		{"tiny discount", "1000", decPtr("999.99"), intPtr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountPercent(dec(tt.base), tt.discount)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestDiscountPercent_AlwaysInRange(t *testing.T) {
	// For every valid pair 0 <= discount < base the percentage stays in
	// [0, 100].
	bases := []string{"0.01", "1", "9.99", "100", "12345.67"}
	fractions := []string{"0", "0.001", "0.25", "0.5", "0.75", "0.999"}

	for _, b := range bases {
		base := dec(b)
		for _, f := range fractions {
			discount := base.Mul(dec(f)).Round(2)
			if discount.GreaterThanOrEqual(base) {
				continue
			}
			got := DiscountPercent(base, &discount)
			require.NotNil(t, got)
			assert.GreaterOrEqual(t, *got, 0, "base=%s discount=%s", base, discount)
			assert.LessOrEqual(t, *got, 100, "base=%s discount=%s", base, discount)
		}
	}
}

func TestValidateDiscount(t *testing.T) {
	assert.NoError(t, ValidateDiscount(dec("100"), nil))
	assert.NoError(t, ValidateDiscount(dec("100"), decPtr("75")))
	assert.NoError(t, ValidateDiscount(dec("100"), decPtr("0")))

	assert.ErrorIs(t, ValidateDiscount(dec("100"), decPtr("100")), ErrInvalidDiscount)
	assert.ErrorIs(t, ValidateDiscount(dec("100"), decPtr("150")), ErrInvalidDiscount)
	assert.ErrorIs(t, ValidateDiscount(dec("100"), decPtr("-1")), ErrInvalidDiscount)
	assert.ErrorIs(t, ValidateDiscount(dec("0"), decPtr("0")), ErrInvalidDiscount)
}

func TestEffectivePrice(t *testing.T) {
	assert.True(t, EffectivePrice(dec("100"), decPtr("75")).Equal(dec("75")))
	assert.True(t, EffectivePrice(dec("50"), nil).Equal(dec("50")))
}

func TestResolveTotal(t *testing.T) {
	fees := FeeSchedule{
		ServiceFee: dec("9.99"),
		BookingFee: dec("4.99"),
	}

	// discounted item: 75 + 9.99 + 4.99
	total := ResolveTotal(dec("100"), decPtr("75"), fees)
	assert.True(t, total.Equal(dec("89.98")), "got %s", total)

	// no discount: 50 + 9.99 + 4.99
	total = ResolveTotal(dec("50"), nil, fees)
	assert.True(t, total.Equal(dec("64.98")), "got %s", total)

	// zero fees leave the effective price untouched
	total = ResolveTotal(dec("50"), nil, FeeSchedule{})
	assert.True(t, total.Equal(dec("50")), "got %s", total)
}

func intPtr(n int) *int { return &n }

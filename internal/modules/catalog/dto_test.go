package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelnest/internal/pkg/validator"
)

func TestListQueryFilters_Defaults(t *testing.T) {
	f, err := ListQuery{}.filters()
	require.NoError(t, err)

	require.NotNil(t, f.Active)
	assert.True(t, *f.Active)
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, 0, f.Offset)
}

func TestListQueryFilters_InvalidMaxPrice(t *testing.T) {
	_, err := ListQuery{MaxPrice: "not-a-number"}.filters()

	var errs validator.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "max_price")
}

func TestListQueryFilters_MaxPrice(t *testing.T) {
	f, err := ListQuery{MaxPrice: "500.00"}.filters()
	require.NoError(t, err)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, "500", f.MaxPrice.String())
}

func TestItemInput_DiscountPriceJSON(t *testing.T) {
	// absent field: nothing to apply
	var in ItemInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x"}`), &in))
	assert.False(t, in.DiscountPrice.Set)

	// explicit null: clear request
	in = ItemInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"discount_price":null}`), &in))
	assert.True(t, in.DiscountPrice.Set)
	assert.Nil(t, in.DiscountPrice.Value)

	// value: ordinary assignment
	in = ItemInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"discount_price":"749.99"}`), &in))
	assert.True(t, in.DiscountPrice.Set)
	require.NotNil(t, in.DiscountPrice.Value)
	assert.Equal(t, "749.99", in.DiscountPrice.Value.String())
}

package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelnest/internal/domain"
)

func strPtr(s string) *string { return &s }

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func optDec(s string) OptionalDecimal {
	return OptionalDecimal{Set: true, Value: decimalPtr(s)}
}

func validCreateInput() ItemInput {
	return ItemInput{
		Title:       strPtr("Santorini Getaway"),
		Description: strPtr("Whitewashed villages and caldera views."),
		Location:    strPtr("Santorini, Greece"),
		Category:    strPtr("Beach"),
		BasePrice:   decimalPtr("999.99"),
		Image:       strPtr("uploads/santorini.jpg"),
	}
}

func TestApplyItemInput_CreateValid(t *testing.T) {
	var item domain.CatalogItem
	errs := applyItemInput(&item, validCreateInput(), ModeCreate, domain.KindDestination, false)

	require.Nil(t, errs)
	assert.Equal(t, "Santorini Getaway", item.Title)
	assert.Equal(t, "Beach", item.Category)
	assert.True(t, item.BasePrice.Equal(decimal.RequireFromString("999.99")))
	require.NotNil(t, item.ImageRef)
	assert.Equal(t, "uploads/santorini.jpg", *item.ImageRef)
}

func TestApplyItemInput_CreateMissingRequired(t *testing.T) {
	var item domain.CatalogItem
	errs := applyItemInput(&item, ItemInput{}, ModeCreate, domain.KindDestination, false)

	require.NotNil(t, errs)
	for _, field := range []string{"title", "description", "base_price", "image"} {
		assert.Equal(t, "required", errs[field], field)
	}
}

func TestApplyItemInput_TitleBounds(t *testing.T) {
	in := validCreateInput()
	in.Title = strPtr("ab")

	var item domain.CatalogItem
	errs := applyItemInput(&item, in, ModeCreate, domain.KindDestination, false)
	require.NotNil(t, errs)
	assert.Contains(t, errs["title"], "between 3 and 255")

	in.Title = strPtr(strings.Repeat("x", 256))
	errs = applyItemInput(&domain.CatalogItem{}, in, ModeCreate, domain.KindDestination, false)
	require.NotNil(t, errs)
	assert.Contains(t, errs["title"], "between 3 and 255")
}

func TestApplyItemInput_DescriptionBounds(t *testing.T) {
	in := validCreateInput()
	in.Description = strPtr("too short")

	errs := applyItemInput(&domain.CatalogItem{}, in, ModeCreate, domain.KindDestination, false)
	require.NotNil(t, errs)
	assert.Contains(t, errs["description"], "between 10 and 5000")

	in.Description = strPtr(strings.Repeat("x", 5001))
	errs = applyItemInput(&domain.CatalogItem{}, in, ModeCreate, domain.KindDestination, false)
	require.NotNil(t, errs)
	assert.Contains(t, errs["description"], "between 10 and 5000")
}

func TestApplyItemInput_CategoryEnum(t *testing.T) {
	in := validCreateInput()
	in.Category = strPtr("Space Tourism")

	// company channel rejects values outside the enumeration
	errs := applyItemInput(&domain.CatalogItem{}, in, ModeCreate, domain.KindDestination, false)
	require.NotNil(t, errs)
	assert.Contains(t, errs["category"], "must be one of")

	// admin channel accepts free text
	var item domain.CatalogItem
	errs = applyItemInput(&item, in, ModeCreate, domain.KindDestination, true)
	require.Nil(t, errs)
	assert.Equal(t, "Space Tourism", item.Category)
}

func TestApplyItemInput_CategoryCaseInsensitive(t *testing.T) {
	in := validCreateInput()
	in.Category = strPtr("beach")

	var item domain.CatalogItem
	errs := applyItemInput(&item, in, ModeCreate, domain.KindDestination, false)
	require.Nil(t, errs)
	assert.Equal(t, "Beach", item.Category)
}

func TestApplyItemInput_DiscountRules(t *testing.T) {
	in := validCreateInput()
	in.BasePrice = decimalPtr("100")
	in.DiscountPrice = optDec("100")

	errs := applyItemInput(&domain.CatalogItem{}, in, ModeCreate, domain.KindDestination, false)
	require.NotNil(t, errs)
	assert.Equal(t, "discount price must be less than regular price", errs["discount_price"])

	in.DiscountPrice = optDec("-5")
	errs = applyItemInput(&domain.CatalogItem{}, in, ModeCreate, domain.KindDestination, false)
	require.NotNil(t, errs)
	assert.Equal(t, "must not be negative", errs["discount_price"])

	in.DiscountPrice = optDec("75")
	var item domain.CatalogItem
	errs = applyItemInput(&item, in, ModeCreate, domain.KindDestination, false)
	require.Nil(t, errs)
	require.NotNil(t, item.DiscountPrice)
	assert.True(t, item.DiscountPrice.Equal(decimal.RequireFromString("75")))
}

func TestApplyItemInput_UpdateLoweringBaseBelowStoredDiscount(t *testing.T) {
	stored := domain.CatalogItem{
		Title:         "Santorini Getaway",
		Description:   "Whitewashed villages and caldera views.",
		BasePrice:     decimal.RequireFromString("999.99"),
		DiscountPrice: decimalPtr("749.99"),
	}

	errs := applyItemInput(&stored, ItemInput{BasePrice: decimalPtr("500")}, ModeUpdate, domain.KindDestination, false)

	require.NotNil(t, errs)
	assert.Equal(t, "discount price must be less than regular price", errs["discount_price"])
}

func TestApplyItemInput_UpdateOmittedFieldsPreserved(t *testing.T) {
	img := "uploads/santorini.jpg"
	stored := domain.CatalogItem{
		Title:       "Santorini Getaway",
		Description: "Whitewashed villages and caldera views.",
		BasePrice:   decimal.RequireFromString("999.99"),
		ImageRef:    &img,
		IsActive:    true,
	}

	errs := applyItemInput(&stored, ItemInput{Title: strPtr("Santorini Escape")}, ModeUpdate, domain.KindDestination, false)

	require.Nil(t, errs)
	assert.Equal(t, "Santorini Escape", stored.Title)
	require.NotNil(t, stored.ImageRef)
	assert.Equal(t, "uploads/santorini.jpg", *stored.ImageRef)
	assert.True(t, stored.IsActive)
}

func TestApplyItemInput_ClearDiscount(t *testing.T) {
	dt := domain.DiscountFixed
	stored := domain.CatalogItem{
		Title:         "Santorini Getaway",
		Description:   "Whitewashed villages and caldera views.",
		BasePrice:     decimal.RequireFromString("999.99"),
		DiscountPrice: decimalPtr("749.99"),
		DiscountType:  &dt,
	}

	// explicit null drops the discount and its type
	errs := applyItemInput(&stored, ItemInput{DiscountPrice: OptionalDecimal{Set: true}}, ModeUpdate, domain.KindDestination, false)

	require.Nil(t, errs)
	assert.Nil(t, stored.DiscountPrice)
	assert.Nil(t, stored.DiscountType)
}

func TestApplyItemInput_OfferDatesRequiredOnCreate(t *testing.T) {
	in := validCreateInput()

	errs := applyItemInput(&domain.CatalogItem{}, in, ModeCreate, domain.KindOffer, false)
	require.NotNil(t, errs)
	assert.Equal(t, "required", errs["start_date"])
	assert.Equal(t, "required", errs["end_date"])

	in.StartDate = strPtr("2026-10-01")
	in.EndDate = strPtr("2026-10-15")
	var item domain.CatalogItem
	errs = applyItemInput(&item, in, ModeCreate, domain.KindOffer, false)
	require.Nil(t, errs)
	require.NotNil(t, item.StartDate)
	require.NotNil(t, item.EndDate)
}

func TestApplyItemInput_DateOrdering(t *testing.T) {
	in := validCreateInput()
	in.StartDate = strPtr("2026-10-15")
	in.EndDate = strPtr("2026-10-01")

	errs := applyItemInput(&domain.CatalogItem{}, in, ModeCreate, domain.KindOffer, false)
	require.NotNil(t, errs)
	assert.Equal(t, "must not be before start_date", errs["end_date"])
}

func TestApplyItemInput_ImageRequiredByKind(t *testing.T) {
	in := validCreateInput()
	in.Image = nil

	// destinations and offers need a photo
	errs := applyItemInput(&domain.CatalogItem{}, in, ModeCreate, domain.KindDestination, false)
	require.NotNil(t, errs)
	assert.Equal(t, "required", errs["image"])

	// packages do not
	errs = applyItemInput(&domain.CatalogItem{}, in, ModeCreate, domain.KindPackage, false)
	require.Nil(t, errs)
}

func TestApplyItemInput_RatingBounds(t *testing.T) {
	in := validCreateInput()
	bad := 5.5
	in.Rating = &bad

	errs := applyItemInput(&domain.CatalogItem{}, in, ModeCreate, domain.KindDestination, false)
	require.NotNil(t, errs)
	assert.Equal(t, "must be between 0 and 5", errs["rating"])
}

func TestApplyItemInput_CollectsAllViolations(t *testing.T) {
	in := ItemInput{
		Title:         strPtr("ab"),
		Description:   strPtr("short"),
		BasePrice:     decimalPtr("0"),
		DiscountPrice: optDec("-1"),
	}

	errs := applyItemInput(&domain.CatalogItem{}, in, ModeCreate, domain.KindDestination, false)

	require.NotNil(t, errs)
	assert.Len(t, errs, 5) // title, description, base_price, discount_price, image
}

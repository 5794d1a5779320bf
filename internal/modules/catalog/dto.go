package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"travelnest/internal/domain"
	"travelnest/internal/pkg/validator"
	"travelnest/internal/repository"
)

// OptionalDecimal distinguishes an absent field from an explicit JSON null,
// so an update can clear a stored value by sending null.
type OptionalDecimal struct {
	Set   bool
	Value *decimal.Decimal
}

func (o *OptionalDecimal) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	o.Value = &d
	return nil
}

// ItemInput is the not-yet-validated payload for creating or updating a
// sellable item. Pointer fields distinguish "omitted" from zero values, so
// updates can leave stored fields untouched.
type ItemInput struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	Location      *string          `json:"location"`
	Category      *string          `json:"category"`
	BasePrice     *decimal.Decimal `json:"base_price"`
	DiscountPrice OptionalDecimal  `json:"discount_price"`
	DiscountType  *string          `json:"discount_type"`
	StartDate     *string          `json:"start_date"`
	EndDate       *string          `json:"end_date"`
	Rating        *float64         `json:"rating"`
	IsFeatured    *bool            `json:"is_featured"`
	IsActive      *bool            `json:"is_active"`
	Image         *string          `json:"image"`
	Days          *int             `json:"days"`
}

type ListQuery struct {
	Category string `form:"category"`
	Location string `form:"location"`
	Featured *bool  `form:"featured"`
	Active   *bool  `form:"active"`
	MaxPrice string `form:"max_price"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

func (q ListQuery) filters() (repository.ItemFilters, error) {
	f := repository.ItemFilters{
		Category: q.Category,
		Location: q.Location,
		Featured: q.Featured,
		Active:   q.Active,
	}

	if q.MaxPrice != "" {
		p, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			// Bad user input, not a server fault.
			errs := make(validator.Errors)
			errs.Add("max_price", "must be a valid decimal number")
			return f, errs
		}
		f.MaxPrice = &p
	}

	// Public browsing sees active items unless the caller asks otherwise.
	if f.Active == nil {
		active := true
		f.Active = &active
	}

	perPage := q.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 20
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	f.Limit = perPage
	f.Offset = (page - 1) * perPage

	return f, nil
}

// Views attach the computed pricing fields the frontend renders next to the
// stored ones.

type DestinationView struct {
	domain.Destination
	EffectivePrice  decimal.Decimal `json:"effective_price"`
	DiscountPercent *int            `json:"discount_percent,omitempty"`
	LegacyCategory  bool            `json:"legacy_category,omitempty"`
}

type PackageView struct {
	domain.Package
	EffectivePrice  decimal.Decimal `json:"effective_price"`
	DiscountPercent *int            `json:"discount_percent,omitempty"`
	LegacyCategory  bool            `json:"legacy_category,omitempty"`
}

type OfferView struct {
	domain.Offer
	EffectivePrice  decimal.Decimal `json:"effective_price"`
	DiscountPercent *int            `json:"discount_percent,omitempty"`
	LegacyCategory  bool            `json:"legacy_category,omitempty"`
}

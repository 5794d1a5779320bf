package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"travelnest/internal/domain"
	"travelnest/internal/pkg/validator"
	"travelnest/internal/pricing"
)

var minBasePrice = decimal.RequireFromString("0.01")

type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

const dateLayout = "2006-01-02"

// applyItemInput validates in and merges it into item, which is zero-valued
// on create and a copy of the stored record on update. All violations are
// collected in one pass so the caller can surface them together.
//
// The admin channel accepts free-text categories for compatibility with
// records that predate the closed enumeration; the company channel only
// accepts enumerated values.
func applyItemInput(item *domain.CatalogItem, in ItemInput, mode Mode, kind domain.ItemKind, adminChannel bool) validator.Errors {
	errs := make(validator.Errors)

	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if len(t) < 3 || len(t) > 255 {
			errs.Add("title", "must be between 3 and 255 characters")
		} else {
			item.Title = t
		}
	} else if mode == ModeCreate {
		errs.Add("title", "required")
	}

	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		if len(d) < 10 || len(d) > 5000 {
			errs.Add("description", "must be between 10 and 5000 characters")
		} else {
			item.Description = d
		}
	} else if mode == ModeCreate {
		errs.Add("description", "required")
	}

	if in.Location != nil {
		l := strings.TrimSpace(*in.Location)
		if len(l) > 255 {
			errs.Add("location", "must be at most 255 characters")
		} else {
			item.Location = l
		}
	}

	if in.Category != nil {
		c := strings.TrimSpace(*in.Category)
		switch {
		case c == "":
			item.Category = ""
		case adminChannel:
			if len(c) > 100 {
				errs.Add("category", "must be at most 100 characters")
			} else {
				item.Category = c
			}
		default:
			parsed, err := domain.ParseCategory(c)
			if err != nil {
				errs.Add("category", "must be one of Beach, Mountain, City, Cultural, Adventure, Historical, Wildlife")
			} else {
				item.Category = string(parsed)
			}
		}
	}

	if in.BasePrice != nil {
		if in.BasePrice.LessThan(minBasePrice) {
			errs.Add("base_price", "must be at least 0.01")
		} else {
			item.BasePrice = *in.BasePrice
		}
	} else if mode == ModeCreate {
		errs.Add("base_price", "required")
	}

	if in.DiscountPrice.Set {
		switch {
		case in.DiscountPrice.Value == nil:
			// Explicit null clears the discount; the type goes with it.
			item.DiscountPrice = nil
			item.DiscountType = nil
		case in.DiscountPrice.Value.Sign() < 0:
			errs.Add("discount_price", "must not be negative")
		default:
			item.DiscountPrice = in.DiscountPrice.Value
		}
	}

	if in.DiscountType != nil {
		dt, err := domain.ParseDiscountType(*in.DiscountType)
		if err != nil {
			errs.Add("discount_type", "must be percentage or fixed")
		} else {
			item.DiscountType = &dt
		}
	}

	if in.StartDate != nil {
		if t, err := time.Parse(dateLayout, *in.StartDate); err != nil {
			errs.Add("start_date", "must be a valid date (YYYY-MM-DD)")
		} else {
			item.StartDate = &t
		}
	} else if mode == ModeCreate && kind == domain.KindOffer {
		errs.Add("start_date", "required")
	}

	if in.EndDate != nil {
		if t, err := time.Parse(dateLayout, *in.EndDate); err != nil {
			errs.Add("end_date", "must be a valid date (YYYY-MM-DD)")
		} else {
			item.EndDate = &t
		}
	} else if mode == ModeCreate && kind == domain.KindOffer {
		errs.Add("end_date", "required")
	}

	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			errs.Add("rating", "must be between 0 and 5")
		} else {
			item.Rating = *in.Rating
		}
	}

	if in.Image != nil {
		img := strings.TrimSpace(*in.Image)
		if img == "" || len(img) > 500 {
			errs.Add("image", "must be a non-empty reference of at most 500 characters")
		} else {
			item.ImageRef = &img
		}
	} else if mode == ModeCreate && imageRequired(kind) {
		// A sellable destination or offer must have a photo. Omitting the
		// image on update preserves the stored one.
		errs.Add("image", "required")
	}

	if in.IsFeatured != nil {
		item.IsFeatured = *in.IsFeatured
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}

	// Cross-field invariants run against the merged record, so an update
	// that lowers the base price below a stored discount is caught too.
	if _, ok := errs["discount_price"]; !ok {
		if err := pricing.ValidateDiscount(item.BasePrice, item.DiscountPrice); err != nil {
			errs.Add("discount_price", "discount price must be less than regular price")
		}
	}

	if item.StartDate != nil && item.EndDate != nil && item.EndDate.Before(*item.StartDate) {
		errs.Add("end_date", "must not be before start_date")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func imageRequired(kind domain.ItemKind) bool {
	return kind == domain.KindDestination || kind == domain.KindOffer
}

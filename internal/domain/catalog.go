package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ItemKind string

const (
	KindDestination ItemKind = "destination"
	KindPackage     ItemKind = "package"
	KindOffer       ItemKind = "offer"
)

func ParseItemKind(s string) (ItemKind, error) {
	switch ItemKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDestination:
		return KindDestination, nil
	case KindPackage:
		return KindPackage, nil
	case KindOffer:
		return KindOffer, nil
	}
	return "", errors.New("unknown item kind")
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func ParseDiscountType(s string) (DiscountType, error) {
	switch DiscountType(strings.ToLower(strings.TrimSpace(s))) {
	case DiscountPercentage:
		return DiscountPercentage, nil
	case DiscountFixed:
		return DiscountFixed, nil
	}
	return "", errors.New("unknown discount type")
}

// Category is the closed classification set for sellable items. Records
// written before the enumeration existed may carry free-text values; those
// are tolerated on read but never accepted on new company writes.
type Category string

const (
	CategoryBeach      Category = "Beach"
	CategoryMountain   Category = "Mountain"
	CategoryCity       Category = "City"
	CategoryCultural   Category = "Cultural"
	CategoryAdventure  Category = "Adventure"
	CategoryHistorical Category = "Historical"
	CategoryWildlife   Category = "Wildlife"
)

var categories = map[Category]bool{
	CategoryBeach:      true,
	CategoryMountain:   true,
	CategoryCity:       true,
	CategoryCultural:   true,
	CategoryAdventure:  true,
	CategoryHistorical: true,
	CategoryWildlife:   true,
}

func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", errors.New("unknown category")
}

// IsLegacyCategory reports whether a stored value falls outside the closed
// enumeration.
func IsLegacyCategory(s string) bool {
	return s != "" && !categories[Category(s)]
}

// CatalogItem holds the fields shared by every sellable item type.
// Invariants (enforced at the validation boundary, not here):
// DiscountPrice < BasePrice when present; StartDate <= EndDate when both set.
type CatalogItem struct {
	Title         string           `json:"title" gorm:"size:255;not null"`
	Description   string           `json:"description" gorm:"type:text"`
	Location      string           `json:"location,omitempty" gorm:"size:255"`
	Category      string           `json:"category,omitempty" gorm:"size:100;index"`
	BasePrice     decimal.Decimal  `json:"base_price" gorm:"type:decimal(10,2);not null"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty" gorm:"type:decimal(10,2)"`
	DiscountType  *DiscountType    `json:"discount_type,omitempty" gorm:"size:20"`
	StartDate     *time.Time       `json:"start_date,omitempty"`
	EndDate       *time.Time       `json:"end_date,omitempty"`
	IsFeatured    bool             `json:"is_featured" gorm:"default:false;index"`
	IsActive      bool             `json:"is_active" gorm:"default:true;index"`
	Rating        float64          `json:"rating" gorm:"default:0"`
	ImageRef      *string          `json:"image,omitempty" gorm:"size:500"`
	OwnerID       *int64           `json:"owner_id,omitempty" gorm:"index"`
}

type Destination struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	CatalogItem `gorm:"embedded"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Destination) TableName() string { return "destinations" }

type Package struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	CatalogItem `gorm:"embedded"`
	Days        int            `json:"days,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Package) TableName() string { return "packages" }

type Offer struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	CatalogItem `gorm:"embedded"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Offer) TableName() string { return "offers" }

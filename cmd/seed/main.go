// Seeds a local database with an admin account, a demo company, and a few
// catalog items so the frontend has something to render.
package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"travelnest/internal/config"
	"travelnest/internal/database"
	"travelnest/internal/domain"
	"travelnest/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	users := repository.NewUserRepository(db)
	destinations := repository.NewDestinationRepository(db)
	offers := repository.NewOfferRepository(db)

	ctx := context.Background()

	admin := &domain.User{
		Email: "admin@travelnest.local",
		Name:  "Site Admin",
		Role:  domain.RoleAdmin,
	}
	admin.PasswordHash = mustHash("admin-password")
	if err := users.Create(ctx, admin); err != nil {
		log.Printf("seed admin: %v", err)
	}

	company := &domain.User{
		Email:       "company@travelnest.local",
		Name:        "Demo Travel Co",
		CompanyName: "Demo Travel Co",
		Role:        domain.RoleCompany,
	}
	company.PasswordHash = mustHash("company-password")
	if err := users.Create(ctx, company); err != nil {
		log.Printf("seed company: %v", err)
	}

	img := "seed/santorini.jpg"
	discount := decimal.RequireFromString("749.99")
	d := &domain.Destination{
		CatalogItem: domain.CatalogItem{
			Title:         "Santorini Getaway",
			Description:   "Whitewashed villages, caldera views and black-sand beaches.",
			Location:      "Santorini, Greece",
			Category:      string(domain.CategoryBeach),
			BasePrice:     decimal.RequireFromString("999.99"),
			DiscountPrice: &discount,
			IsFeatured:    true,
			IsActive:      true,
			Rating:        4.7,
			ImageRef:      &img,
			OwnerID:       &company.ID,
		},
	}
	if err := destinations.Create(ctx, d); err != nil {
		log.Printf("seed destination: %v", err)
	}

	start := time.Now().AddDate(0, 0, 7)
	end := start.AddDate(0, 1, 0)
	offerImg := "seed/alps.jpg"
	o := &domain.Offer{
		CatalogItem: domain.CatalogItem{
			Title:       "Alpine Adventure Week",
			Description: "Guided hikes and mountain lodges across the Alps.",
			Location:    "Innsbruck, Austria",
			Category:    string(domain.CategoryMountain),
			BasePrice:   decimal.RequireFromString("1299.00"),
			StartDate:   &start,
			EndDate:     &end,
			IsActive:    true,
			Rating:      4.5,
			ImageRef:    &offerImg,
			OwnerID:     &company.ID,
		},
	}
	if err := offers.Create(ctx, o); err != nil {
		log.Printf("seed offer: %v", err)
	}

	log.Println("seed complete")
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return string(hash)
}

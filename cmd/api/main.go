package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"travelnest/internal/config"
	"travelnest/internal/database"
	"travelnest/internal/domain"
	"travelnest/internal/middleware"
	"travelnest/internal/modules/auth"
	"travelnest/internal/modules/booking"
	"travelnest/internal/modules/catalog"
	"travelnest/internal/modules/contact"
	"travelnest/internal/modules/favorite"
	jwtsvc "travelnest/internal/pkg/jwt"
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

	userRepo := repository.NewUserRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	contactRepo := repository.NewContactRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(destinationRepo, packageRepo, offerRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, catalogRepo, cfg.Fees, cfg.MaxGuests)
	bookingHandler := booking.NewHandler(bookingService)

	favoriteService := favorite.NewService(favoriteRepo, destinationRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	contactService := contact.NewService(contactRepo)
	contactHandler := contact.NewHandler(contactService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		contactHandler.RegisterPublicRoutes(v1)

		// any authenticated principal
		authed := v1.Group("/")
		authed.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(authed)
			favoriteHandler.RegisterRoutes(authed)
		}

		// catalog management: companies and admins
		manage := v1.Group("/manage")
		manage.Use(middleware.Auth(j), middleware.RequireRole(domain.RoleCompany, domain.RoleAdmin))
		{
			catalogHandler.RegisterManagementRoutes(manage)
		}

		// admin-only surface
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			contactHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"happyhouse/internal/config"
	"happyhouse/internal/database"
	"happyhouse/internal/middleware"
	"happyhouse/internal/modules/auth"
	"happyhouse/internal/modules/billing"
	"happyhouse/internal/modules/dashboard"
	"happyhouse/internal/modules/rental"
	"happyhouse/internal/modules/rooms"
	jwtsvc "happyhouse/internal/pkg/jwt"
	"happyhouse/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	billingRepo := repository.NewBillingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	roomsHandler := rooms.NewHandler(rooms.NewService(roomRepo))
	rentalHandler := rental.NewHandler(rental.NewService(rentalRepo, roomRepo))
	billingHandler := billing.NewHandler(billing.NewService(roomRepo, rentalRepo, billingRepo))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(roomRepo, invoiceRepo, revenueRepo))

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.RequireSession(j, cfg.SessionTTL))
		{
			authHandler.RegisterProtectedRoutes(protected)
			roomsHandler.RegisterRoutes(protected)
			rentalHandler.RegisterRoutes(protected)
			billingHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

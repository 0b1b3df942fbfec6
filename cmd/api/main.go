package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"equiptrack/internal/config"
	"equiptrack/internal/database"
	"equiptrack/internal/middleware"
	"equiptrack/internal/modules/admin"
	"equiptrack/internal/modules/auth"
	"equiptrack/internal/modules/inventory"
	"equiptrack/internal/modules/payment"
	"equiptrack/internal/modules/reservation"
	jwtsvc "equiptrack/internal/pkg/jwt"
	"equiptrack/internal/repository"
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

	guard := database.NewGuard()

	userRepo := repository.NewUserRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	loginLogRepo := repository.NewLoginLogRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, loginLogRepo, j)
	authHandler := auth.NewHandler(authService)

	inventoryService := inventory.NewService(equipmentRepo)
	inventoryHandler := inventory.NewHandler(inventoryService)

	reservationService := reservation.NewService(reservationRepo, equipmentRepo, guard)
	reservationHandler := reservation.NewHandler(reservationService, userRepo)

	paymentService := payment.NewService(userRepo, paymentRepo, guard)
	paymentHandler := payment.NewHandler(paymentService)

	adminService := admin.NewService(userRepo, loginLogRepo, paymentRepo, guard)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			inventoryHandler.RegisterRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)

			adminGroup := protected.Group("/")
			adminGroup.Use(middleware.AdminOnly())
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/cargasinestres/booking-backend/internal/config"
	"github.com/cargasinestres/booking-backend/internal/database"
	"github.com/cargasinestres/booking-backend/internal/handler"
	"github.com/cargasinestres/booking-backend/internal/middleware"
	"github.com/cargasinestres/booking-backend/internal/queue"
	"github.com/cargasinestres/booking-backend/internal/repository"
	"github.com/cargasinestres/booking-backend/internal/router"
	"github.com/cargasinestres/booking-backend/internal/service"
)

func main() {
	// Load .env if present; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: caching and rate limiting degrade to no-ops
	// when it is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}

	// Repositories.
	customerRepo := repository.NewCustomerRepo(db)
	companyRepo := repository.NewCompanyRepo(db)
	servicioRepo := repository.NewServicioRepo(db)
	ratingRepo := repository.NewRatingRepo(db)
	reservationRepo := repository.NewReservationRepo(db)
	membershipRepo := repository.NewMembershipRepo(db)
	chatRepo := repository.NewChatRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	// Services.
	companySvc := service.NewCompanyService(companyRepo, servicioRepo, cfg.BcryptCost)
	reservationSvc := service.NewReservationService(reservationRepo, customerRepo, companyRepo, servicioRepo)

	// Background consumer records reservation events to logs/.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.Register(e, router.Handlers{
		Auth:         handler.NewAuthHandler(cfg, customerRepo, companySvc, tokenRepo),
		Companies:    handler.NewCompanyHandler(companySvc),
		Reservations: handler.NewReservationHandler(reservationSvc),
		Chats:        handler.NewChatHandler(chatRepo, reservationSvc),
		Ratings:      handler.NewRatingHandler(ratingRepo, companySvc),
		Servicios:    handler.NewServicioHandler(servicioRepo),
		Memberships:  handler.NewMembershipHandler(membershipRepo),
	}, cfg.JWTSecret, cacheMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/resortify/resortify-api/internal/config"
	"github.com/resortify/resortify-api/internal/domain/booking"
	"github.com/resortify/resortify-api/internal/domain/holiday"
	"github.com/resortify/resortify-api/internal/domain/resort"
	"github.com/resortify/resortify-api/internal/middleware"
	"github.com/resortify/resortify-api/internal/pkg/database"
	"github.com/resortify/resortify-api/internal/pkg/jwt"
	"github.com/resortify/resortify-api/internal/pkg/logger"
	pkgresponse "github.com/resortify/resortify-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Resortify API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	// ---------- Repositories ----------
	resortRepo := resort.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	holidayRepo := holiday.NewRepository(db)

	// ---------- Services ----------
	resortService := resort.NewService(resortRepo, redis)
	holidayService := holiday.NewService(holidayRepo, redis)
	bookingService := booking.NewService(bookingRepo, resortService, holidayService)

	// ---------- Handlers ----------
	resortHandler := resort.NewHandler(resortService)
	bookingHandler := booking.NewHandler(bookingService)
	holidayHandler := holiday.NewHandler(holidayService)

	authMiddleware := middleware.Auth(jwtService)
	requireOwner := middleware.RequireRole(middleware.RoleOwner)
	requireAdmin := middleware.RequireRole(middleware.RoleAdmin)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			pkgresponse.OK(w, map[string]string{"message": "pong"})
		})

		r.Mount("/resorts", resortHandler.Routes(authMiddleware, requireOwner))

		r.Route("/resorts/{id}/quote", func(r chi.Router) {
			r.Post("/", bookingHandler.Quote)
		})
		r.Route("/resorts/{id}/availability", func(r chi.Router) {
			r.Get("/", bookingHandler.Availability)
		})
		r.Route("/resorts/{id}/bookings", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/", bookingHandler.ListByResort)
		})

		r.Mount("/bookings", bookingHandler.Routes(authMiddleware))
		r.Mount("/holidays", holidayHandler.Routes())

		r.Route("/admin", func(r chi.Router) {
			r.Mount("/resorts", resortHandler.AdminRoutes(authMiddleware, requireAdmin))
			r.Mount("/holidays", holidayHandler.AdminRoutes(authMiddleware, requireAdmin))
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

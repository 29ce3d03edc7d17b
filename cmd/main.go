// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dancextreme/backend/internal/config"
	"github.com/dancextreme/backend/internal/database"
	"github.com/dancextreme/backend/internal/handler"
	"github.com/dancextreme/backend/internal/model"
	"github.com/dancextreme/backend/internal/payment"
	"github.com/dancextreme/backend/internal/repository"
	"github.com/dancextreme/backend/internal/service"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// ── 1. Connect to PostgreSQL and migrate ──────────────────────────────
	pool, err := database.NewPool(ctx, cfg.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()
	if err := database.Migrate(ctx, cfg.DSN()); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	log.Println("✓ Connected to PostgreSQL")

	// ── 2. Wire up layers ────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	settlementRepo := repository.NewSettlementRepository(pool)

	userSvc := service.NewUserService(userRepo)
	classSvc := service.NewClassService(classRepo)
	cartSvc := service.NewCartService(cartRepo, classRepo)
	paymentSvc := service.NewPaymentService(payment.NewStripeGateway(cfg.StripeSecretKey), settlementRepo)

	secret := []byte(cfg.JWTSecret)
	authMw := handler.NewAuthMiddleware(secret, userSvc)
	userHandler := handler.NewUserHandler(userSvc, secret, cfg.TokenTTL)
	classHandler := handler.NewClassHandler(classSvc)
	cartHandler := handler.NewCartHandler(cartSvc)
	paymentHandler := handler.NewPaymentHandler(paymentSvc)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(chimiddleware.Logger)    // access log
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// Public routes
	r.Get("/", handler.Root)
	r.Get("/health", handler.HealthCheck)
	r.Post("/jwt", userHandler.IssueToken)
	r.Post("/users", userHandler.Register)
	r.Get("/all-classes", classHandler.ListApproved)
	r.Get("/all-instructors", userHandler.ListInstructors)
	r.Get("/get-popular-classes", classHandler.ListPopular)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMw.RequireAuth)

		r.Get("/users/admin/{email}", userHandler.CheckAdmin)
		r.Get("/users/instructor/{email}", userHandler.CheckInstructor)

		r.Post("/selected-classes", cartHandler.Add)
		r.Get("/selected-classes", cartHandler.List)
		r.Delete("/selected-classes/{id}", cartHandler.Remove)

		r.Post("/create-payment-intent", paymentHandler.CreateIntent)
		r.Post("/payment", paymentHandler.Settle)
		r.Get("/enrolled-classes", paymentHandler.ListEnrolled)

		// Instructor-only
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireRole(model.RoleInstructor))
			r.Post("/classes", classHandler.Create)
			r.Get("/classes/{email}", classHandler.ListByInstructor)
		})

		// Admin-only
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireRole(model.RoleAdmin))
			r.Get("/users", userHandler.List)
			r.Patch("/users/make-admin/{id}", userHandler.MakeAdmin)
			r.Patch("/users/make-instructor/{id}", userHandler.MakeInstructor)
			r.Get("/classes", classHandler.ListAll)
			r.Patch("/classes", classHandler.SetStatus)
		})
	})

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Printf("✓ Dance Xtreme is running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped")
}

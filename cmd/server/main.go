package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/orderfoodonline/catalog/internal/config"
	"github.com/orderfoodonline/catalog/internal/handlers"
	"github.com/orderfoodonline/catalog/internal/middleware"
	"github.com/orderfoodonline/catalog/internal/repository"
	"github.com/orderfoodonline/catalog/internal/service"
	"github.com/orderfoodonline/catalog/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting food catalog server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Open database and apply schema
	db, err := repository.Open(cfg.Database.Path)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if err := repository.Migrate(db); err != nil {
		log.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	foodService := service.NewFoodService(catalogRepo, orderRepo, log)
	categoryService := service.NewCategoryService(catalogRepo)
	orderService := service.NewOrderService(orderRepo, catalogRepo)
	userService := service.NewUserService(userRepo, cfg.Auth.JWTSecret)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	foodHandler := handlers.NewFoodHandler(foodService, log)
	categoryHandler := handlers.NewCategoryHandler(categoryService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	authHandler := handlers.NewAuthHandler(userService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Authenticate(cfg.Auth.JWTSecret))

		// Auth endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Public catalog reads
		r.Get("/food", foodHandler.ListFoods)
		r.Get("/food/{foodId}", foodHandler.GetFood)
		r.Get("/category", categoryHandler.ListCategories)
		r.Get("/category/{categoryId}", categoryHandler.GetCategory)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Post("/food", foodHandler.CreateFood)
			r.Put("/food/{foodId}", foodHandler.UpdateFood)
			r.Delete("/food/{foodId}", foodHandler.DeleteFood)

			r.Post("/category", categoryHandler.CreateCategory)
			r.Put("/category/{categoryId}", categoryHandler.UpdateCategory)
			r.Delete("/category/{categoryId}", categoryHandler.DeleteCategory)

			r.Post("/order", orderHandler.CreateOrder)
			r.Get("/order", orderHandler.ListOrders)
			r.Put("/order/{orderId}/status", orderHandler.UpdateOrderStatus)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

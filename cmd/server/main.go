package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"altboard/internal/config"
	"altboard/internal/db"
	"altboard/internal/metrics"
	"altboard/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Category list for the SPA
	categories, err := config.LoadCategories(cfg.CategoriesFile)
	if err != nil {
		log.Fatalf("Failed to load categories: %v", err)
	}

	// Metrics
	metrics.Init(database)

	// Server and routes
	srv := server.New(cfg)
	srv.RegisterRoutes(database, categories)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/culina/recipebook-api/config"
	"github.com/culina/recipebook-api/internal/api"
	"github.com/culina/recipebook-api/internal/database"
	"github.com/culina/recipebook-api/internal/middleware"
	"github.com/culina/recipebook-api/internal/router"
	"github.com/culina/recipebook-api/internal/server"
	"github.com/culina/recipebook-api/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Rate limiting degrades to pass-through without Redis
	limiters := router.Limiters{}
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Warning: Redis unavailable, rate limiting disabled: %v", err)
	} else {
		limiters.Login = middleware.NewLoginRateLimiter(redisClient)
		limiters.RecipeWrite = middleware.NewRecipeWriteRateLimiter(redisClient)
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenExpireMinutes)
	auth := service.NewAuthService(db, tokens)

	handlers := router.Handlers{
		Auth:        api.NewAuthHandler(auth),
		Users:       api.NewUserHandler(service.NewUserService(db)),
		Categories:  api.NewCategoryHandler(service.NewCategoryService(db)),
		Ingredients: api.NewIngredientHandler(service.NewIngredientService(db)),
		Recipes:     api.NewRecipeHandler(service.NewRecipeService(db)),
	}

	engine := router.Setup(handlers, auth, limiters, cfg.AllowedOrigins)
	srv := server.New(engine, fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort))

	errChan := make(chan error, 1)
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

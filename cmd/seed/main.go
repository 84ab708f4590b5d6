package main

import (
	"log"

	"github.com/culina/recipebook-api/config"
	"github.com/culina/recipebook-api/internal/database"
	"github.com/culina/recipebook-api/internal/models"
	"github.com/culina/recipebook-api/internal/service"
)

// Seeds a demo user with a handful of categories, ingredients and one
// recipe. Intended for local development only.
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

	users := service.NewUserService(db)
	categories := service.NewCategoryService(db)
	ingredients := service.NewIngredientService(db)
	recipes := service.NewRecipeService(db)

	user, err := users.Create(service.CreateUserParams{
		Username: "demo",
		Email:    "demo@example.com",
		FullName: "Demo User",
		Password: "demo-password",
		IsActive: true,
	})
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}

	veggies, err := categories.Create("Veggies")
	if err != nil {
		log.Fatalf("Failed to seed category: %v", err)
	}
	dairy, err := categories.Create("Dairy")
	if err != nil {
		log.Fatalf("Failed to seed category: %v", err)
	}

	cucumber, err := ingredients.Create(service.CreateIngredientParams{
		Name:        "Cucumber",
		IsVegan:     true,
		CategoryIDs: []uint{veggies.ID},
	})
	if err != nil {
		log.Fatalf("Failed to seed ingredient: %v", err)
	}
	yogurt, err := ingredients.Create(service.CreateIngredientParams{
		Name:        "Greek yogurt",
		IsVegan:     false,
		CategoryIDs: []uint{dairy.ID},
	})
	if err != nil {
		log.Fatalf("Failed to seed ingredient: %v", err)
	}

	_, err = recipes.Create(service.CreateRecipeParams{
		Name:            "Tzatziki",
		CookingTime:     15,
		DifficultyLevel: models.DifficultyEasy,
		Portions:        4,
		Instructions:    "Grate the cucumber, drain, mix with yogurt.",
		Ingredients: []service.RecipeIngredientInput{
			{IngredientID: cucumber.ID, Quantity: "1 whole"},
			{IngredientID: yogurt.ID, Quantity: "500 grams"},
		},
	}, user)
	if err != nil {
		log.Fatalf("Failed to seed recipe: %v", err)
	}

	log.Println("Seed data created")
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/culina/recipebook-api/internal/api"
	"github.com/culina/recipebook-api/internal/middleware"
	"github.com/culina/recipebook-api/internal/service"
)

// Handlers bundles every route handler the router wires up.
type Handlers struct {
	Auth        *api.AuthHandler
	Users       *api.UserHandler
	Categories  *api.CategoryHandler
	Ingredients *api.IngredientHandler
	Recipes     *api.RecipeHandler
}

// Limiters are optional; nil limiters pass every request through.
type Limiters struct {
	Login       *middleware.RateLimiter
	RecipeWrite *middleware.RateLimiter
}

// Setup configures the application routes.
func Setup(h Handlers, auth *service.AuthService, limiters Limiters, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", api.HealthCheck)
	router.POST("/token", limiters.Login.ByClientIP(), h.Auth.Login)

	users := router.Group("/users")
	{
		users.GET("", h.Users.ListUsers)
		users.GET("/:id", h.Users.GetUser)
		users.POST("", h.Users.CreateUser)
		users.PUT("/:id", h.Users.UpdateUser)
		users.GET("/me", middleware.Auth(auth), h.Users.Me)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", h.Categories.ListCategories)
		categories.GET("/:id", h.Categories.GetCategory)
		categories.POST("", h.Categories.CreateCategory)
		categories.PUT("/:id", h.Categories.UpdateCategory)
		categories.DELETE("/:id", h.Categories.DeleteCategory)
	}

	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.Ingredients.ListIngredients)
		ingredients.GET("/:id", h.Ingredients.GetIngredient)
		ingredients.POST("", h.Ingredients.CreateIngredient)
		ingredients.PUT("/:id", h.Ingredients.UpdateIngredient)
		ingredients.DELETE("/:id", h.Ingredients.DeleteIngredient)
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.Recipes.ListRecipes)
		recipes.GET("/:id", h.Recipes.GetRecipe)
		recipes.GET("/user/:user_id", h.Recipes.ListUserRecipes)

		protected := recipes.Group("")
		protected.Use(middleware.Auth(auth), limiters.RecipeWrite.ByUser())
		{
			protected.POST("", h.Recipes.CreateRecipe)
			protected.PUT("/:id", h.Recipes.UpdateRecipe)
			protected.DELETE("/:id", h.Recipes.DeleteRecipe)
		}
	}

	return router
}

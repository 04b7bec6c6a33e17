package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-brew/internal/api/handlers"
	"inventory-brew/internal/middleware"
)

type Config struct {
	App                *fiber.App
	IngredientHandler  handlers.IngredientHandler
	RecipeHandler      handlers.RecipeHandler
	TransactionHandler handlers.TransactionHandler
	DashboardHandler   handlers.DashboardHandler
	Middleware         middleware.Middleware
	DB                 *gorm.DB
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Health()
	c.Ingredients()
	c.Recipes()
	c.Transactions()
	c.Dashboard()
}

var startedAt = time.Now()

func (c *Config) Health() {
	c.App.Get("/api/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"service":   "Inventory Brew API",
			"status":    "ok",
			"uptime":    time.Since(startedAt).String(),
			"timestamp": time.Now().UTC(),
		})
	})

	c.App.Get("/api/ready", func(ctx *fiber.Ctx) error {
		sqlDB, err := c.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx.Context())
		}
		if err != nil {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return ctx.JSON(fiber.Map{"status": "ready"})
	})
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/ingredients")
	{
		ingredients.Post("", c.IngredientHandler.CreateIngredient)
		ingredients.Get("", c.IngredientHandler.GetIngredients)
		ingredients.Get("/:id", c.IngredientHandler.GetIngredientDetails)
		ingredients.Put("/:id", c.IngredientHandler.UpdateIngredient)
		ingredients.Delete("/:id", c.IngredientHandler.ArchiveIngredient)
		ingredients.Patch("/:id/restore", c.IngredientHandler.RestoreIngredient)
		ingredients.Post("/:id/adjust-stock", c.IngredientHandler.AdjustStock)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetails)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.ArchiveRecipe)
		recipes.Patch("/:id/restore", c.RecipeHandler.RestoreRecipe)
		recipes.Post("/:id/cook", c.RecipeHandler.CookRecipe)
	}
}

func (c *Config) Transactions() {
	transactions := c.App.Group("/api/transactions")
	{
		transactions.Get("", c.TransactionHandler.GetTransactions)
	}
}

func (c *Config) Dashboard() {
	c.App.Get("/api/dashboard/summary", c.DashboardHandler.GetSummary)
}

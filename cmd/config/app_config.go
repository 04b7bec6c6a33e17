package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"inventory-brew/internal/api/handlers"
	"inventory-brew/internal/api/routes"
	"inventory-brew/internal/middleware"
	"inventory-brew/internal/utils"
	"inventory-brew/pkg/cook"
	"inventory-brew/pkg/dashboard"
	"inventory-brew/pkg/ingredient"
	"inventory-brew/pkg/recipe"
	"inventory-brew/pkg/transaction"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Second,
	}))

	// Repository
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	transactionRepository := transaction.NewTransactionRepository(db)
	dashboardRepository := dashboard.NewDashboardRepository(db)
	cookStore := cook.NewCookStore(db)

	// Service
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository)
	transactionService := transaction.NewTransactionService(transactionRepository)
	dashboardService := dashboard.NewDashboardService(dashboardRepository, transactionRepository)
	cookService := cook.NewCookService(cookStore)

	// Handler
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, cookService, validator)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// routes
	routesConfig := routes.Config{
		App:                app,
		IngredientHandler:  ingredientHandler,
		RecipeHandler:      recipeHandler,
		TransactionHandler: transactionHandler,
		DashboardHandler:   dashboardHandler,
		Middleware:         middlewares,
		DB:                 db,
	}
	routesConfig.Setup()
	return app, nil
}

package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"sorteat-backend/internal/api/handlers"
	"sorteat-backend/internal/api/routes"
	"sorteat-backend/internal/middleware"
	"sorteat-backend/internal/utils"
	"sorteat-backend/internal/utils/storage"
	"sorteat-backend/pkg/inventory"
	"sorteat-backend/pkg/jwt"
	"sorteat-backend/pkg/meal"
	"sorteat-backend/pkg/member"
	"sorteat-backend/pkg/midtrans"
	"sorteat-backend/pkg/notification"
	"sorteat-backend/pkg/recipe"
	"sorteat-backend/pkg/shopping"
	"sorteat-backend/pkg/waste"
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
		TimeZone:   "Europe/Rome",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	memberRepository := member.NewMemberRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	mealRepository := meal.NewMealRepository(db)
	wasteRepository := waste.NewWasteRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	memberService := member.NewMemberService(memberRepository, jwtService)
	wasteService := waste.NewWasteService(wasteRepository)
	inventoryService := inventory.NewInventoryService(inventoryRepository, memberRepository, wasteService, s3)
	midtransService := midtrans.NewMidtransService(midtransRepository)
	shoppingService := shopping.NewShoppingService(shoppingRepository, inventoryRepository, memberRepository, midtransService)
	recipeService := recipe.NewRecipeService(recipeRepository, inventoryRepository, shoppingRepository, memberRepository)
	mealService := meal.NewMealService(mealRepository, recipeRepository, inventoryService)
	notificationService := notification.NewNotificationService(notificationRepository, inventoryService, memberRepository)

	// Handler
	memberHandler := handlers.NewMemberHandler(memberService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	wasteHandler := handlers.NewWasteHandler(wasteService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		MemberHandler:       memberHandler,
		InventoryHandler:    inventoryHandler,
		ShoppingHandler:     shoppingHandler,
		RecipeHandler:       recipeHandler,
		MealHandler:         mealHandler,
		WasteHandler:        wasteHandler,
		NotificationHandler: notificationHandler,
		MidtransHandler:     midtransHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"sorteat-backend/internal/api/handlers"
	"sorteat-backend/internal/middleware"
	"sorteat-backend/pkg/jwt"
)

type Config struct {
	App                 *fiber.App
	MemberHandler       handlers.MemberHandler
	InventoryHandler    handlers.InventoryHandler
	ShoppingHandler     handlers.ShoppingHandler
	RecipeHandler       handlers.RecipeHandler
	MealHandler         handlers.MealHandler
	WasteHandler        handlers.WasteHandler
	NotificationHandler handlers.NotificationHandler
	MidtransHandler     handlers.MidtransHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Members()
	c.Products()
	c.Shopping()
	c.Recipes()
	c.Meals()
	c.Waste()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) Members() {
	members := c.App.Group("/api/v1/members")
	{
		members.Post("/register", c.MemberHandler.Register)
		members.Post("/login", c.MemberHandler.Login)
		members.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.MemberHandler.Me)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))

	products.Post("", c.InventoryHandler.AddProducts)
	products.Get("", c.InventoryHandler.GetProducts)
	products.Get("/expiring", c.InventoryHandler.GetExpiringProducts)
	products.Patch("/:id", c.InventoryHandler.UpdateProduct)
	products.Delete("/:id", c.InventoryHandler.DeleteProduct)

	products.Post("/consume", c.InventoryHandler.ConsumeIngredients)
	products.Post("/receipt-scan", c.InventoryHandler.UploadReceipt)
	products.Get("/receipt-scan/:id", c.InventoryHandler.GetReceiptScan)
	products.Post("/save-scanned", c.InventoryHandler.SaveScannedItems)
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping", c.Middleware.AuthMiddleware(c.JWTService))

	shopping.Post("", c.ShoppingHandler.AddItem)
	shopping.Get("", c.ShoppingHandler.GetItems)
	shopping.Patch("/:id", c.ShoppingHandler.UpdateItem)
	shopping.Delete("/:id", c.ShoppingHandler.DeleteItem)
	shopping.Post("/:id/toggle", c.ShoppingHandler.ToggleItem)
	shopping.Post("/checkout", c.ShoppingHandler.Checkout)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)

	recipes.Get("/:id/availability", c.RecipeHandler.CheckAvailability)
	recipes.Post("/:id/shopping-list", c.RecipeHandler.AddMissingToList)
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals", c.Middleware.AuthMiddleware(c.JWTService))

	meals.Get("", c.MealHandler.GetMeals)
	meals.Put("/slot", c.MealHandler.UpdateSlot)
	meals.Post("/cook", c.MealHandler.Cook)
}

func (c *Config) Waste() {
	waste := c.App.Group("/api/v1/waste", c.Middleware.AuthMiddleware(c.JWTService))

	waste.Get("", c.WasteHandler.GetStats)
	waste.Post("/register", c.WasteHandler.RegisterWaste)
	waste.Post("/tick", c.WasteHandler.Tick)
	waste.Get("/events", c.WasteHandler.GetEvents)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))

	notifications.Get("", c.NotificationHandler.GetNotifications)
	notifications.Post("", c.NotificationHandler.SaveNotification)
	notifications.Post("/:id/read", c.NotificationHandler.MarkRead)
	notifications.Delete("", c.NotificationHandler.ClearNotifications)
	notifications.Post("/digest", c.NotificationHandler.SendExpiryDigest)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.HandleWebhook)
}

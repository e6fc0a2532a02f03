package routes

import (
	"Eco-Earn-Backend/internal/api/handlers"
	"Eco-Earn-Backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	SeedHandler        handlers.SeedHandler
	PlantHandler       handlers.PlantHandler
	ShopHandler        handlers.ShopHandler
	WalletHandler      handlers.WalletHandler
	LeaderboardHandler handlers.LeaderboardHandler
	Middleware         middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Seeds()
	c.Plants()
	c.Shop()
	c.Wallet()
	c.Leaderboard()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Get("/me", c.UserHandler.Me)
	}
}

func (c *Config) Seeds() {
	seeds := c.App.Group("/api/v1/seeds")
	{
		seeds.Get("", c.SeedHandler.GetSeeds)
		seeds.Get("/:id", c.SeedHandler.GetSeedDetail)
	}
}

func (c *Config) Plants() {
	plants := c.App.Group("/api/v1/plants")
	{
		plants.Get("", c.PlantHandler.GetPlants)
		plants.Get("/:id", c.PlantHandler.GetPlantDetail)
		plants.Post("/:id/check-in", c.PlantHandler.CheckIn)
	}
}

func (c *Config) Shop() {
	cart := c.App.Group("/api/v1/cart")
	{
		cart.Get("", c.ShopHandler.GetCart)
		cart.Post("/items", c.ShopHandler.AddCartItem)
		cart.Patch("/items/:seedId", c.ShopHandler.UpdateCartItem)
		cart.Delete("/items/:seedId", c.ShopHandler.RemoveCartItem)
		cart.Post("/coupon", c.ShopHandler.ApplyCoupon)
		cart.Post("/checkout", c.ShopHandler.Checkout)
	}

	c.App.Post("/api/v1/shop/purchase", c.ShopHandler.Purchase)
}

func (c *Config) Wallet() {
	c.App.Get("/api/v1/transactions", c.WalletHandler.GetTransactionHistory)
}

func (c *Config) Leaderboard() {
	c.App.Get("/api/v1/leaderboard", c.LeaderboardHandler.GetLeaderboard)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}

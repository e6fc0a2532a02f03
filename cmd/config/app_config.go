package config

import (
	"Eco-Earn-Backend/internal/api/handlers"
	"Eco-Earn-Backend/internal/api/routes"
	"Eco-Earn-Backend/internal/middleware"
	"Eco-Earn-Backend/internal/utils"
	"Eco-Earn-Backend/internal/utils/storage"
	"Eco-Earn-Backend/pkg/kvstore"
	"Eco-Earn-Backend/pkg/leaderboard"
	"Eco-Earn-Backend/pkg/plant"
	"Eco-Earn-Backend/pkg/shop"
	"Eco-Earn-Backend/pkg/user"
	"Eco-Earn-Backend/pkg/wallet"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func NewApp(store kvstore.Store) (*fiber.App, error) {
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
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	var objectStorage storage.ObjectStorage
	if utils.GetConfig("AWS_S3_BUCKET") != "" {
		objectStorage = storage.NewAwsS3()
	} else {
		uploadDir := utils.GetConfig("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = "./data/uploads"
		}
		objectStorage = storage.NewLocalDisk(uploadDir, utils.GetConfig("APP_URL"))
		app.Static("/uploads", uploadDir)
	}

	// Repository
	userRepository := user.NewUserRepository(store)
	transactionRepository := wallet.NewTransactionRepository(store)
	plantRepository := plant.NewPlantRepository(store)
	cartRepository := shop.NewCartRepository(store)
	leaderboardRepository := leaderboard.NewLeaderboardRepository(store)

	// Service
	userService := user.NewUserService(userRepository)
	walletService := wallet.NewWalletService(transactionRepository)
	plantService := plant.NewPlantService(
		plantRepository,
		userRepository,
		transactionRepository,
		objectStorage,
	)
	shopService := shop.NewShopService(
		cartRepository,
		userRepository,
		plantRepository,
		transactionRepository,
	)
	leaderboardService := leaderboard.NewLeaderboardService(
		leaderboardRepository,
		userRepository,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	seedHandler := handlers.NewSeedHandler()
	plantHandler := handlers.NewPlantHandler(plantService, validator)
	shopHandler := handlers.NewShopHandler(shopService, validator)
	walletHandler := handlers.NewWalletHandler(walletService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		SeedHandler:        seedHandler,
		PlantHandler:       plantHandler,
		ShopHandler:        shopHandler,
		WalletHandler:      walletHandler,
		LeaderboardHandler: leaderboardHandler,
		Middleware:         middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

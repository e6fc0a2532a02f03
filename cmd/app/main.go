package main

import (
	"log"

	"Eco-Earn-Backend/cmd/config"
	"Eco-Earn-Backend/cmd/database/seed"
	"Eco-Earn-Backend/internal/utils"
	"Eco-Earn-Backend/pkg/kvstore"
)

func main() {
	utils.LoadConfig()

	var (
		store kvstore.Store
		err   error
	)
	if utils.GetConfig("DB_HOST") != "" {
		db, err := config.ConnectDB()
		if err != nil {
			log.Fatalf("Database connection failed: %v", err)
		}
		store, err = kvstore.NewGormStore(db)
		if err != nil {
			log.Fatalf("Store setup failed: %v", err)
		}
	} else {
		path := utils.GetConfig("STORE_PATH")
		if path == "" {
			path = "./data/store.json"
		}
		store, err = kvstore.NewFileStore(path)
		if err != nil {
			log.Fatalf("Store setup failed: %v", err)
		}
	}

	if err := seed.Seed(store); err != nil {
		log.Fatalf("Store seeding failed: %v", err)
	}

	app, err := config.NewApp(store)
	if err != nil {
		log.Fatalf("Application setup failed: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

package main

import (
	"log"

	"inventory-brew/cmd/config"
	migration "inventory-brew/cmd/database/migrate"
	"inventory-brew/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("SERVER_PORT")); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

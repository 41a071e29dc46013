package main

import (
	"log"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
)

// Standalone migration runner for deployments where the web process should
// not alter the schema.
func main() {
	log.Println("Starting database migration...")

	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Database connection check failed: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed successfully")
}

package main

import (
	"recipe_api/internal/config" // Custom import path (Config)
	"recipe_api/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DSN()) // Run schema migration
}

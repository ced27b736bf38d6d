package main

import (
	"flag"                         // Command-line flags
	"recipe_api/internal/config"   // Custom package for configuration
	"recipe_api/internal/identity" // User creation

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Main entry point for creating an admin user
func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		logrus.Fatal("both -email and -password are required")
	}

	cfg := config.LoadConfig() // Load configuration

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	user, err := identity.CreateSuperuser(db, *email, *password)
	if err != nil {
		logrus.Fatalf("failed to create superuser: %v", err)
	}
	logrus.Infof("Superuser %s created.", user.Email) // Log successful creation
}

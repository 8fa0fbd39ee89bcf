package db

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gamereviews/models"
)

var DB *gorm.DB

// InitDB connects and migrates the two tables. Postgres when DATABASE_URL is
// set, otherwise a file-backed SQLite store so the service runs standalone.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var openErr error
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		DB, openErr = gorm.Open(postgres.Open(dsn), config)
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "gamereviews.db"
		}
		DB, openErr = gorm.Open(sqlite.Open(path), config)
	}
	if openErr != nil {
		log.Fatal("failed to connect to the database:", openErr)
	}

	if err := DB.AutoMigrate(&models.Game{}, &models.Review{}); err != nil {
		log.Fatal("failed to migrate:", err)
	}

	log.Println("Database connected and migrated")
}

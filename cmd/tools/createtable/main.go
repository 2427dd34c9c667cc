package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/notifications"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/orders"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/payments"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/transactions"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/users"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&users.User{},
		&transactions.Transaction{},
		&orders.Order{},
		&notifications.Notification{},
		&payments.WebhookEvent{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	log.Println("✓ tables migrated successfully")
}

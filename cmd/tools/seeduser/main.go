package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/users"
)

// Creates a demo user so the payment flow can be exercised locally.
func main() {
	name := flag.String("name", "Demo User", "Display name")
	email := flag.String("email", "demo@tapsync.local", "Email address")
	phone := flag.String("phone", "+2348000000000", "Phone number")
	username := flag.String("username", "demo", "Username")
	password := flag.String("password", "changeme", "Plaintext password (hashed before storage)")
	account := flag.String("account-type", users.AccountPersonal, "Account type (personal or company)")

	flag.Parse()

	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	now := time.Now()
	u := users.User{
		ID:           uuid.NewString(),
		Name:         *name,
		Email:        *email,
		Phone:        *phone,
		Username:     *username,
		PasswordHash: string(hash),
		IsVerified:   true,
		AccountType:  *account,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	log.Printf("✓ user created: id=%s email=%s", u.ID, u.Email)
}

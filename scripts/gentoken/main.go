// Generates a JWT for a test user, creating the user row if needed.
// Usage: go run ./scripts/gentoken
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/tinytools/server/internal/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	dbPool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	testEmail := "test@tinytools.dev"
	var userID string

	err = dbPool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", testEmail).Scan(&userID)

	if err != nil {
		userID = uuid.New().String()
		_, err = dbPool.Exec(ctx, `
			INSERT INTO users (id, email, name, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())
		`, userID, testEmail, "Test User")

		if err != nil {
			log.Fatalf("Failed to create test user: %v", err)
		}
		fmt.Printf("Created test user: %s (ID: %s)\n", testEmail, userID)
	} else {
		fmt.Printf("Using existing test user (ID: %s)\n", userID)
	}

	token, err := auth.GenerateJWT(userID, testEmail)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Printf("\nAuthorization: Bearer %s\n", token)
}

// Encrypts a provider API key with SECRETS_KEY for seeding the ai_models
// table. The plaintext key is read from stdin so it stays out of shell
// history.
// Usage: go run ./scripts/encryptkey < key.txt
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tinytools/server/internal/secrets"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	secretsKey := os.Getenv("SECRETS_KEY")
	if secretsKey == "" {
		log.Fatal("SECRETS_KEY not set")
	}

	encryptor, err := secrets.NewAESGCM(secretsKey)
	if err != nil {
		log.Fatalf("Invalid SECRETS_KEY: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)

	plaintext, err := reader.ReadString('\n')
	if err != nil && plaintext == "" {
		log.Fatalf("Failed to read key from stdin: %v", err)
	}

	plaintext = strings.TrimSpace(plaintext)
	if plaintext == "" {
		log.Fatal("No key provided on stdin")
	}

	ciphertext, err := encryptor.Encrypt(plaintext)
	if err != nil {
		log.Fatalf("Failed to encrypt key: %v", err)
	}

	fmt.Println(ciphertext)
}

package bootstrap

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv loads a local .env file when one exists. Deployed environments set
// variables directly, so a missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}
}

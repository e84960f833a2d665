package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("ℹ️  No .env file found, continuing...")
	}
}

// DatabaseURL returns DATABASE_URL from the environment after loading
// .env, or "" when it is not set.
func DatabaseURL() string {
	LoadEnv()
	return os.Getenv("DATABASE_URL")
}

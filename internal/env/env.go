// Package env loads configuration from the process environment, with an
// optional .env file for development.
package env

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads a .env file if one is present
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set directly.")
	}
}

// Get returns the value of key, or fallback when unset
func Get(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// GetInt returns the integer value of key, or fallback when unset or
// not a number
func GetInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("Environment variable %s is not a number, using %d", key, fallback)
		return fallback
	}
	return n
}

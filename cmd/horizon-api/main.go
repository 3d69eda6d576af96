package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Local development reads .env; production sets real environment variables.
	_ = godotenv.Load()

	Execute()
}

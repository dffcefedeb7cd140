package main

import (
	"os"

	"github.com/Yun525/ERD/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	os.Exit(cli.Execute())
}

package main

import (
	"os"

	"github.com/joho/godotenv"

	"library-backend/pkg/logger"
)

func main() {
	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	Serve()
}

package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/portalcentro/centrorag/internal/adapters/driving/cli"
	"github.com/portalcentro/centrorag/internal/logger"
)

func main() {
	// Optional; API keys can come from a local .env file.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not load .env: %v", err)
	}

	if err := cli.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

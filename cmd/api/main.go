package main

import (
	"context"
	"log"

	"github.com/Apurer/wastewise-api/internal/app/api"
)

func main() {
	if err := api.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if err := api.Run(context.Background(), cfg); err != nil {
		log.Fatalf("api exited: %v", err)
	}
}

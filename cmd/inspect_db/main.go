package main

import (
	"context"
	"fmt"
	"os"

	"github.com/NourAshoush/GlobeLogAssets/internal/config"
	"github.com/NourAshoush/GlobeLogAssets/internal/db"
	"github.com/NourAshoush/GlobeLogAssets/internal/logging"
)

func main() {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}
	if err := logging.Init(appEnv); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	log := logging.WithStage("inspect_db")
	cfg := config.Load()

	conn, err := db.OpenSQLite(cfg.DatabasePath())
	if err != nil {
		log.Errorw("Failed to open database; run build_db first", "error", err.Error())
		os.Exit(1)
	}
	defer conn.Close()

	fmt.Printf("Database: %s\n", cfg.DatabasePath())
	if err := db.Inspect(context.Background(), conn, os.Stdout); err != nil {
		log.Errorw("Inspection failed", "error", err.Error())
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/NourAshoush/GlobeLogAssets/internal/config"
	"github.com/NourAshoush/GlobeLogAssets/internal/datasets"
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

	log := logging.WithStage("build_db")
	cfg := config.Load()

	continents, err := datasets.ReadContinents(cfg.CuratedContinentsCSV())
	if err != nil {
		log.Errorw("Failed to load curated continents; run curate_countries first", "error", err.Error())
		os.Exit(1)
	}
	countries, err := datasets.ReadCountries(cfg.CuratedCountriesCSV())
	if err != nil {
		log.Errorw("Failed to load curated countries; run curate_countries first", "error", err.Error())
		os.Exit(1)
	}
	airports, err := datasets.ReadAirports(cfg.CuratedAirportsCSV())
	if err != nil {
		log.Errorw("Failed to load curated airports; run curate_airports first", "error", err.Error())
		os.Exit(1)
	}

	ctx := context.Background()
	if err := db.BuildDatabase(ctx, cfg.DatabasePath(), continents, countries, airports); err != nil {
		log.Errorw("Database build failed", "error", err.Error())
		os.Exit(1)
	}

	log.Infow("Database build complete",
		"path", cfg.DatabasePath(),
		"continents", len(continents),
		"countries", len(countries),
		"airports", len(airports))
	fmt.Printf("Built %s with %d continents, %d countries, %d airports.\n",
		cfg.DatabasePath(), len(continents), len(countries), len(airports))
}

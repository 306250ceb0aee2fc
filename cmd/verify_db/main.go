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

	log := logging.WithStage("verify_db")
	cfg := config.Load()

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

	conn, err := db.OpenSQLite(cfg.DatabasePath())
	if err != nil {
		log.Errorw("Failed to open database; run build_db first", "error", err.Error())
		os.Exit(1)
	}
	defer conn.Close()

	ctx := context.Background()
	report, err := db.VerifyDatabase(ctx, conn, countries, airports, db.DefaultSmokeQueries)
	if err != nil {
		log.Errorw("Database verification failed", "error", err.Error())
		os.Exit(1)
	}

	for _, line := range report.Lines() {
		fmt.Println(line)
	}

	if !report.OK() {
		log.Errorw("Database does not match curated CSVs",
			"field_mismatches", len(report.FieldMismatches),
			"missing_airports", len(report.MissingAirports),
			"missing_countries", len(report.MissingCountries))
		os.Exit(1)
	}
	log.Infow("Database verification passed",
		"airports", report.AirportDBRows,
		"countries", report.CountryDBRows)
}

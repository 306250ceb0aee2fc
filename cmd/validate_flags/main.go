package main

import (
	"fmt"
	"os"

	"github.com/NourAshoush/GlobeLogAssets/internal/config"
	"github.com/NourAshoush/GlobeLogAssets/internal/datasets"
	"github.com/NourAshoush/GlobeLogAssets/internal/logging"
	"github.com/NourAshoush/GlobeLogAssets/internal/validate"
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

	log := logging.WithStage("validate_flags")
	cfg := config.Load()

	countries, err := datasets.ReadCountries(cfg.CuratedCountriesCSV())
	if err != nil {
		log.Errorw("Failed to load curated countries; run curate_countries first", "error", err.Error())
		os.Exit(1)
	}

	report, err := validate.ValidateFlags(countries, cfg.FlagsDir)
	if err != nil {
		log.Errorw("Flag validation failed", "error", err.Error())
		os.Exit(1)
	}

	for _, line := range report.Lines() {
		fmt.Println(line)
	}

	if !report.OK() {
		log.Errorw("Flag validation failed",
			"missing", len(report.Missing),
			"miscased", len(report.Miscased),
			"duplicates", len(report.Duplicates))
		os.Exit(1)
	}
	log.Infow("Flag validation passed",
		"countries", report.CountryTotal,
		"orphans", len(report.Orphans))
}

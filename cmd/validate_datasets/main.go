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

	log := logging.WithStage("validate_datasets")
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

	report := validate.ValidateDatasets(countries, airports)
	for _, line := range report.Lines() {
		fmt.Println(line)
	}

	if !report.OK() {
		log.Errorw("Dataset validation failed",
			"missing_countries", len(report.MissingCountries))
		os.Exit(1)
	}
	log.Infow("Dataset validation passed",
		"countries", report.CountryTotal,
		"airports", report.AirportTotal,
		"countries_without_airports", len(report.CountriesWithoutAirports))
}

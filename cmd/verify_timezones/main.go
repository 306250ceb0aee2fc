package main

import (
	"fmt"
	"os"

	"github.com/NourAshoush/GlobeLogAssets/internal/config"
	"github.com/NourAshoush/GlobeLogAssets/internal/curate"
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

	log := logging.WithStage("verify_timezones")
	cfg := config.Load()

	airports, err := datasets.ReadAirports(cfg.CuratedAirportsCSV())
	if err != nil {
		log.Errorw("Failed to load curated airports; run curate_airports first", "error", err.Error())
		os.Exit(1)
	}

	source, err := curate.LoadTimezoneSource(cfg.AirportTimezonesJSON())
	if err != nil {
		log.Errorw("Failed to load timezone source", "error", err.Error())
		os.Exit(1)
	}
	overrides, err := curate.LoadTimezoneOverrides(cfg.TimezoneOverridesJSON())
	if err != nil {
		log.Errorw("Failed to load timezone overrides", "error", err.Error())
		os.Exit(1)
	}

	report := validate.VerifyTimezones(airports, curate.MergeTimezones(source, overrides))
	for _, line := range report.Lines() {
		fmt.Println(line)
	}

	if !report.OK() {
		log.Errorw("Timezone verification failed",
			"uncovered", len(report.Uncovered),
			"country_mismatches", len(report.Mismatches))
		os.Exit(1)
	}
	log.Infow("Timezone verification passed",
		"airports", report.AirportTotal,
		"coverage", report.Coverage())
}

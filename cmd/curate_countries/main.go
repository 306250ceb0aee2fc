package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NourAshoush/GlobeLogAssets/internal/config"
	"github.com/NourAshoush/GlobeLogAssets/internal/curate"
	"github.com/NourAshoush/GlobeLogAssets/internal/datasets"
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

	log := logging.WithStage("curate_countries")
	cfg := config.Load()

	rows, err := datasets.ReadRawTable(cfg.RawCountriesCSV())
	if err != nil {
		log.Errorw("Failed to load raw countries", "error", err.Error())
		os.Exit(1)
	}

	corrections, err := curate.LoadNameCorrections(cfg.CountryNameCorrectionsJSON())
	if err != nil {
		log.Errorw("Failed to load name corrections", "error", err.Error())
		os.Exit(1)
	}

	result, err := curate.CurateCountries(rows, corrections)
	if err != nil {
		log.Errorw("Country curation failed", "error", err.Error())
		os.Exit(1)
	}

	if err := datasets.WriteCountries(cfg.CuratedCountriesCSV(), result.Countries); err != nil {
		log.Errorw("Failed to write curated countries", "error", err.Error())
		os.Exit(1)
	}
	if err := datasets.WriteContinents(cfg.CuratedContinentsCSV(), result.Continents); err != nil {
		log.Errorw("Failed to write curated continents", "error", err.Error())
		os.Exit(1)
	}

	log.Infow("Country curation complete",
		"countries", len(result.Countries),
		"continents", len(result.Continents),
		"excluded_codes", result.Excluded,
		"corrections", len(corrections),
	)
	fmt.Printf("Processed %d countries → %s and %d continents → %s.\n",
		len(result.Countries), filepath.Base(cfg.CuratedCountriesCSV()),
		len(result.Continents), filepath.Base(cfg.CuratedContinentsCSV()))
	if len(result.Excluded) > 0 {
		fmt.Printf("Excluded non-ISO codes: %v\n", result.Excluded)
	}
}

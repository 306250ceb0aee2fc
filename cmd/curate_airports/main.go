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

	log := logging.WithStage("curate_airports")
	cfg := config.Load()

	countries, err := datasets.ReadCountries(cfg.CuratedCountriesCSV())
	if err != nil {
		log.Errorw("Failed to load curated countries; run curate_countries first", "error", err.Error())
		os.Exit(1)
	}
	countryCodes := make(map[string]bool, len(countries))
	for _, c := range countries {
		countryCodes[c.Code] = true
	}

	rows, err := datasets.ReadRawTable(cfg.RawAirportsCSV())
	if err != nil {
		log.Errorw("Failed to load raw airports", "error", err.Error())
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
	timezones := curate.MergeTimezones(source, overrides)

	result, err := curate.CurateAirports(rows, countryCodes, timezones)
	if err != nil {
		log.Errorw("Airport curation failed", "error", err.Error())
		os.Exit(1)
	}

	if err := datasets.WriteAirports(cfg.CuratedAirportsCSV(), result.Airports); err != nil {
		log.Errorw("Failed to write curated airports", "error", err.Error())
		os.Exit(1)
	}

	log.Infow("Airport curation complete",
		"kept", len(result.Airports),
		"type_counts", result.TypeCounts,
		"missing_iata", result.MissingIATA,
		"replaced_duplicates", result.ReplacedDuplicates,
	)
	fmt.Printf("Read %d airports from %s. Wrote %d → %s.\n",
		len(rows), filepath.Base(cfg.RawAirportsCSV()),
		len(result.Airports), filepath.Base(cfg.CuratedAirportsCSV()))
	fmt.Printf("Kept %d airports (medium: %d, large: %d). Skipped %d medium/large airports without IATA codes.\n",
		len(result.Airports), result.TypeCounts["medium_airport"], result.TypeCounts["large_airport"],
		result.MissingIATA)

	if len(result.UnknownCountries) > 0 {
		log.Errorw("Airports reference countries absent from the curated set",
			"iata_codes", result.UnknownCountries)
		fmt.Printf("Rejected airports with unknown country codes: %v\n", result.UnknownCountries)
		os.Exit(1)
	}
}

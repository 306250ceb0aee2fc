package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config resolves every fixed path the pipeline stages operate on. Stages
// take no arguments; the data and flag directories can be relocated through
// DATA_DIR and FLAGS_DIR, everything below them is fixed by contract.
type Config struct {
	DataDir  string
	FlagsDir string
}

// Load reads an optional .env file and resolves the directory roots.
func Load() *Config {
	// Missing .env is fine, env vars may be set directly.
	_ = godotenv.Load()

	return &Config{
		DataDir:  envOr("DATA_DIR", "data"),
		FlagsDir: envOr("FLAGS_DIR", "flags"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) RawCountriesCSV() string      { return filepath.Join(c.DataDir, "countries.csv") }
func (c *Config) RawAirportsCSV() string       { return filepath.Join(c.DataDir, "airports.csv") }
func (c *Config) CuratedCountriesCSV() string  { return filepath.Join(c.DataDir, "curated_countries.csv") }
func (c *Config) CuratedContinentsCSV() string { return filepath.Join(c.DataDir, "curated_continents.csv") }
func (c *Config) CuratedAirportsCSV() string   { return filepath.Join(c.DataDir, "curated_airports.csv") }
func (c *Config) AirportTimezonesJSON() string { return filepath.Join(c.DataDir, "airport-timezones.json") }

// Manual correction files, authored by hand and never written by the pipeline.
func (c *Config) TimezoneOverridesJSON() string {
	return filepath.Join(c.DataDir, "corrections", "timezone_overrides.json")
}
func (c *Config) CountryNameCorrectionsJSON() string {
	return filepath.Join(c.DataDir, "corrections", "country_names.json")
}

func (c *Config) DatabasePath() string { return filepath.Join(c.DataDir, "globelog.sqlite") }

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/NourAshoush/GlobeLogAssets/internal/db/repositories"
	"github.com/NourAshoush/GlobeLogAssets/internal/models/entities"
	gormmodels "github.com/NourAshoush/GlobeLogAssets/internal/models/gorm"
)

// ErrReferentialViolation marks a curated row referencing a key absent from
// its parent table. The build fails hard; rows are never silently dropped.
var ErrReferentialViolation = errors.New("referential violation")

// schemaStatements create the relational tables and secondary indices. The
// FTS index is created separately after the airport table is populated.
var schemaStatements = []string{
	`CREATE TABLE continent (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE country (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		continent_code TEXT NOT NULL REFERENCES continent(code) ON UPDATE CASCADE
	)`,
	`CREATE TABLE airport (
		iata TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		municipality TEXT,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		continent_code TEXT NOT NULL REFERENCES continent(code),
		country_code TEXT NOT NULL REFERENCES country(code),
		timezone TEXT,
		icao_code TEXT,
		gps_code TEXT
	)`,
	`CREATE INDEX idx_airport_country ON airport(country_code)`,
	`CREATE INDEX idx_airport_municipality ON airport(municipality)`,
	`CREATE INDEX idx_airport_timezone ON airport(timezone)`,
}

const createSearchIndex = `CREATE VIRTUAL TABLE airport_search USING fts5(
	name,
	municipality,
	iata,
	icao_code,
	country_code,
	content='airport',
	content_rowid='rowid'
)`

const populateSearchIndex = `INSERT INTO airport_search(rowid, name, municipality, iata, icao_code, country_code)
	SELECT rowid, name, IFNULL(municipality, ''), iata, IFNULL(icao_code, ''), country_code
	FROM airport`

// BuildDatabase rebuilds the sqlite artifact at path from the curated
// collections. The previous file is removed first; the build is a function
// of the curated CSVs alone.
func BuildDatabase(
	ctx context.Context,
	path string,
	continents []entities.Continent,
	countries []entities.Country,
	airports []entities.Airport,
) error {
	if err := checkReferences(continents, countries, airports); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove previous database %s: %w", path, err)
	}

	gdb, err := OpenSQLiteORM(path)
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("failed to access sqlite connection: %w", err)
	}
	defer sqlDB.Close()

	for _, stmt := range schemaStatements {
		if err := gdb.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	continentRepo := repositories.NewContinentRepository(gdb)
	if err := continentRepo.BatchInsert(ctx, toContinentModels(continents)); err != nil {
		return fmt.Errorf("failed to insert continents: %w", err)
	}

	countryRepo := repositories.NewCountryRepository(gdb)
	if err := countryRepo.BatchInsert(ctx, toCountryModels(countries)); err != nil {
		return fmt.Errorf("failed to insert countries: %w", err)
	}

	airportModels, err := toAirportModels(airports)
	if err != nil {
		return err
	}
	airportRepo := repositories.NewAirportRepository(gdb)
	if err := airportRepo.BatchInsert(ctx, airportModels); err != nil {
		return fmt.Errorf("failed to insert airports: %w", err)
	}

	if err := gdb.WithContext(ctx).Exec(createSearchIndex).Error; err != nil {
		return fmt.Errorf("failed to create search index: %w", err)
	}
	if err := gdb.WithContext(ctx).Exec(populateSearchIndex).Error; err != nil {
		return fmt.Errorf("failed to populate search index: %w", err)
	}

	if err := gdb.WithContext(ctx).Exec("VACUUM").Error; err != nil {
		return fmt.Errorf("failed to vacuum database: %w", err)
	}
	return nil
}

// checkReferences verifies every foreign key before any insert so failures
// name the offending rows instead of surfacing as a driver error mid-batch.
// The sqlite foreign_keys pragma stays on as a backstop.
func checkReferences(continents []entities.Continent, countries []entities.Country, airports []entities.Airport) error {
	continentCodes := make(map[string]bool, len(continents))
	for _, c := range continents {
		continentCodes[c.Code] = true
	}
	countryCodes := make(map[string]bool, len(countries))
	for _, c := range countries {
		if !continentCodes[c.Continent] {
			return fmt.Errorf("%w: country %s references missing continent %q", ErrReferentialViolation, c.Code, c.Continent)
		}
		countryCodes[c.Code] = true
	}
	for _, a := range airports {
		if !countryCodes[a.ISOCountry] {
			return fmt.Errorf("%w: airport %s references missing country %q", ErrReferentialViolation, a.IATA, a.ISOCountry)
		}
		if !continentCodes[a.Continent] {
			return fmt.Errorf("%w: airport %s references missing continent %q", ErrReferentialViolation, a.IATA, a.Continent)
		}
	}
	return nil
}

func toContinentModels(continents []entities.Continent) []gormmodels.Continent {
	models := make([]gormmodels.Continent, 0, len(continents))
	for _, c := range continents {
		models = append(models, gormmodels.Continent{Code: c.Code, Name: c.Name})
	}
	return models
}

func toCountryModels(countries []entities.Country) []gormmodels.Country {
	models := make([]gormmodels.Country, 0, len(countries))
	for _, c := range countries {
		models = append(models, gormmodels.Country{
			Code:          c.Code,
			Name:          c.Name,
			ContinentCode: c.Continent,
		})
	}
	return models
}

func toAirportModels(airports []entities.Airport) ([]gormmodels.Airport, error) {
	models := make([]gormmodels.Airport, 0, len(airports))
	for _, a := range airports {
		lat, err := strconv.ParseFloat(a.LatitudeDeg, 64)
		if err != nil {
			return nil, fmt.Errorf("airport %s: bad latitude %q: %w", a.IATA, a.LatitudeDeg, err)
		}
		lng, err := strconv.ParseFloat(a.LongitudeDeg, 64)
		if err != nil {
			return nil, fmt.Errorf("airport %s: bad longitude %q: %w", a.IATA, a.LongitudeDeg, err)
		}
		models = append(models, gormmodels.Airport{
			IATA:          a.IATA,
			Name:          a.Name,
			Municipality:  nullable(a.Municipality),
			Latitude:      lat,
			Longitude:     lng,
			ContinentCode: a.Continent,
			CountryCode:   a.ISOCountry,
			Timezone:      nullable(a.Timezone),
			ICAOCode:      nullable(a.ICAOCode),
			GPSCode:       nullable(a.GPSCode),
		})
	}
	return models, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

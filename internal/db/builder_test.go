package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NourAshoush/GlobeLogAssets/internal/db/repositories"
	"github.com/NourAshoush/GlobeLogAssets/internal/models/entities"
)

var (
	testContinents = []entities.Continent{
		{Code: "AS", Name: "Asia"},
		{Code: "EU", Name: "Europe"},
	}
	testCountries = []entities.Country{
		{Code: "AE", Name: "United Arab Emirates", Continent: "AS"},
		{Code: "CH", Name: "Switzerland", Continent: "EU"},
		{Code: "GB", Name: "United Kingdom", Continent: "EU"},
	}
	testAirports = []entities.Airport{
		{
			IATA: "DXB", Name: "Dubai International Airport",
			LatitudeDeg: "25.2528", LongitudeDeg: "55.3644",
			Continent: "AS", ISOCountry: "AE", Municipality: "Dubai",
			Timezone: "Asia/Dubai", ICAOCode: "OMDB", GPSCode: "OMDB",
		},
		{
			IATA: "LHR", Name: "London Heathrow Airport",
			LatitudeDeg: "51.4706", LongitudeDeg: "-0.461941",
			Continent: "EU", ISOCountry: "GB", Municipality: "London",
			Timezone: "Europe/London", ICAOCode: "EGLL", GPSCode: "EGLL",
		},
		{
			IATA: "ZRH", Name: "Zürich Airport",
			LatitudeDeg: "47.4647", LongitudeDeg: "8.54917",
			Continent: "EU", ISOCountry: "CH", Municipality: "Zürich",
			Timezone: "Europe/Zurich", ICAOCode: "LSZH", GPSCode: "LSZH",
		},
	}
)

func buildTestDatabase(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "globelog.sqlite")
	err := BuildDatabase(context.Background(), path, testContinents, testCountries, testAirports)
	require.NoError(t, err)
	return path
}

func TestBuildDatabase_PopulatesAllTables(t *testing.T) {
	path := buildTestDatabase(t)

	gdb, err := OpenSQLiteORM(path)
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	ctx := context.Background()

	continentCount, err := repositories.NewContinentRepository(gdb).Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, continentCount)

	countryCount, err := repositories.NewCountryRepository(gdb).Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, countryCount)

	airportRepo := repositories.NewAirportRepository(gdb)
	airportCount, err := airportRepo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, airportCount)

	dxb, err := airportRepo.FindByIATA(ctx, "dxb")
	require.NoError(t, err)
	require.NotNil(t, dxb)
	require.Equal(t, "Dubai International Airport", dxb.Name)
	require.Equal(t, "AE", dxb.CountryCode)
	require.InDelta(t, 25.2528, dxb.Latitude, 0.0001)
}

func TestBuildDatabase_SearchIndex(t *testing.T) {
	path := buildTestDatabase(t)

	gdb, err := OpenSQLiteORM(path)
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	ctx := context.Background()
	airportRepo := repositories.NewAirportRepository(gdb)

	hits, err := airportRepo.Search(ctx, "dubai", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	require.Equal(t, "DXB", hits[0].IATA)

	// Diacritics must survive the index; unicode61 folds the query too.
	hits, err = airportRepo.Search(ctx, "zürich", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	require.Equal(t, "ZRH", hits[0].IATA)

	hits, err = airportRepo.Search(ctx, "EGLL", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	require.Equal(t, "LHR", hits[0].IATA)
}

func TestBuildDatabase_MissingCountryIsHardFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "globelog.sqlite")
	airports := append([]entities.Airport{}, testAirports...)
	airports = append(airports, entities.Airport{
		IATA: "AAA", Name: "Phantom International",
		LatitudeDeg: "0", LongitudeDeg: "0",
		Continent: "AS", ISOCountry: "ZY",
	})

	err := BuildDatabase(context.Background(), path, testContinents, testCountries, airports)
	require.ErrorIs(t, err, ErrReferentialViolation)
}

func TestBuildDatabase_MissingContinentIsHardFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "globelog.sqlite")
	countries := append([]entities.Country{}, testCountries...)
	countries = append(countries, entities.Country{Code: "BR", Name: "Brazil", Continent: "SA"})

	err := BuildDatabase(context.Background(), path, testContinents, countries, testAirports)
	require.ErrorIs(t, err, ErrReferentialViolation)
}

func TestBuildDatabase_IsReproducible(t *testing.T) {
	path := buildTestDatabase(t)

	// Second build over the same file must start clean, not accumulate.
	err := BuildDatabase(context.Background(), path, testContinents, testCountries, testAirports)
	require.NoError(t, err)

	gdb, err := OpenSQLiteORM(path)
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	count, err := repositories.NewAirportRepository(gdb).Count(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, len(testAirports), count)
}

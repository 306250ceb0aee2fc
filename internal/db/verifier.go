package db

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/NourAshoush/GlobeLogAssets/internal/models/entities"
)

// SmokeQuery is one fixed full-text search the verifier runs against the
// built index. ExpectIATA must appear among the top hits.
type SmokeQuery struct {
	Term       string
	ExpectIATA string
}

// DefaultSmokeQueries cover well-known airports across scripts and regions,
// including names with non-ASCII characters so encoding problems in the
// index surface here.
var DefaultSmokeQueries = []SmokeQuery{
	{Term: "dubai", ExpectIATA: "DXB"},
	{Term: "heathrow", ExpectIATA: "LHR"},
	{Term: "paulo", ExpectIATA: "GRU"},
	{Term: "zürich", ExpectIATA: "ZRH"},
}

// SmokeResult is the outcome of one smoke query.
type SmokeResult struct {
	Term       string
	ExpectIATA string
	Hits       []string
	Passed     bool
}

// VerifyReport compares the built database against the curated CSVs.
type VerifyReport struct {
	AirportCSVRows int
	AirportDBRows  int
	CountryCSVRows int
	CountryDBRows  int

	MissingAirports  []string
	ExtraAirports    []string
	MissingCountries []string
	ExtraCountries   []string
	FieldMismatches  []string
	SmokeResults     []SmokeResult
}

type dbAirport struct {
	IATA          string         `db:"iata"`
	Name          string         `db:"name"`
	Municipality  sql.NullString `db:"municipality"`
	Latitude      float64        `db:"latitude"`
	Longitude     float64        `db:"longitude"`
	ContinentCode string         `db:"continent_code"`
	CountryCode   string         `db:"country_code"`
	Timezone      sql.NullString `db:"timezone"`
	ICAOCode      sql.NullString `db:"icao_code"`
	GPSCode       sql.NullString `db:"gps_code"`
}

type dbCountry struct {
	Code          string `db:"code"`
	Name          string `db:"name"`
	ContinentCode string `db:"continent_code"`
}

// VerifyDatabase checks that the database mirrors the curated CSVs row for
// row and that the full-text index answers the smoke queries.
func VerifyDatabase(
	ctx context.Context,
	conn *sqlx.DB,
	countries []entities.Country,
	airports []entities.Airport,
	smoke []SmokeQuery,
) (*VerifyReport, error) {
	var airportRows []dbAirport
	if err := conn.SelectContext(ctx, &airportRows, "SELECT * FROM airport"); err != nil {
		return nil, fmt.Errorf("failed to read airport table: %w", err)
	}
	var countryRows []dbCountry
	if err := conn.SelectContext(ctx, &countryRows, "SELECT * FROM country"); err != nil {
		return nil, fmt.Errorf("failed to read country table: %w", err)
	}

	report := &VerifyReport{
		AirportCSVRows: len(airports),
		AirportDBRows:  len(airportRows),
		CountryCSVRows: len(countries),
		CountryDBRows:  len(countryRows),
	}

	dbAirports := make(map[string]dbAirport, len(airportRows))
	for _, row := range airportRows {
		dbAirports[row.IATA] = row
	}
	dbCountries := make(map[string]dbCountry, len(countryRows))
	for _, row := range countryRows {
		dbCountries[row.Code] = row
	}

	for _, a := range airports {
		row, ok := dbAirports[a.IATA]
		if !ok {
			report.MissingAirports = append(report.MissingAirports, a.IATA)
			continue
		}
		compareField(report, a.IATA, "name", a.Name, row.Name)
		compareField(report, a.IATA, "municipality", a.Municipality, row.Municipality.String)
		compareField(report, a.IATA, "continent", a.Continent, row.ContinentCode)
		compareField(report, a.IATA, "iso_country", a.ISOCountry, row.CountryCode)
		compareField(report, a.IATA, "timezone", a.Timezone, row.Timezone.String)
		compareField(report, a.IATA, "icao_code", a.ICAOCode, row.ICAOCode.String)
		compareField(report, a.IATA, "gps_code", a.GPSCode, row.GPSCode.String)
		delete(dbAirports, a.IATA)
	}
	for iata := range dbAirports {
		report.ExtraAirports = append(report.ExtraAirports, iata)
	}

	for _, c := range countries {
		row, ok := dbCountries[c.Code]
		if !ok {
			report.MissingCountries = append(report.MissingCountries, c.Code)
			continue
		}
		compareField(report, c.Code, "name", c.Name, row.Name)
		compareField(report, c.Code, "continent", c.Continent, row.ContinentCode)
		delete(dbCountries, c.Code)
	}
	for code := range dbCountries {
		report.ExtraCountries = append(report.ExtraCountries, code)
	}

	sort.Strings(report.MissingAirports)
	sort.Strings(report.ExtraAirports)
	sort.Strings(report.MissingCountries)
	sort.Strings(report.ExtraCountries)
	sort.Strings(report.FieldMismatches)

	for _, q := range smoke {
		result, err := runSmokeQuery(ctx, conn, q)
		if err != nil {
			return nil, err
		}
		report.SmokeResults = append(report.SmokeResults, result)
	}

	return report, nil
}

func compareField(report *VerifyReport, key, field, csvValue, dbValue string) {
	if strings.TrimSpace(csvValue) != strings.TrimSpace(dbValue) {
		report.FieldMismatches = append(report.FieldMismatches,
			fmt.Sprintf("%s: %s mismatch CSV=%q DB=%q", key, field, csvValue, dbValue))
	}
}

func runSmokeQuery(ctx context.Context, conn *sqlx.DB, q SmokeQuery) (SmokeResult, error) {
	var hits []string
	err := conn.SelectContext(ctx, &hits, `
		SELECT a.iata
		FROM airport_search s
		JOIN airport a ON a.rowid = s.rowid
		WHERE airport_search MATCH ?
		ORDER BY rank
		LIMIT 10`, q.Term)
	if err != nil {
		return SmokeResult{}, fmt.Errorf("smoke query %q failed: %w", q.Term, err)
	}

	result := SmokeResult{Term: q.Term, ExpectIATA: q.ExpectIATA, Hits: hits}
	for _, iata := range hits {
		if iata == q.ExpectIATA {
			result.Passed = true
			break
		}
	}
	return result, nil
}

// OK reports whether the database matches the CSVs and every smoke query
// found its expected record.
func (r *VerifyReport) OK() bool {
	if len(r.MissingAirports) > 0 || len(r.ExtraAirports) > 0 ||
		len(r.MissingCountries) > 0 || len(r.ExtraCountries) > 0 ||
		len(r.FieldMismatches) > 0 {
		return false
	}
	for _, s := range r.SmokeResults {
		if !s.Passed {
			return false
		}
	}
	return true
}

// Lines renders the report for the operator.
func (r *VerifyReport) Lines() []string {
	lines := []string{
		fmt.Sprintf("Curated airports CSV rows: %d", r.AirportCSVRows),
		fmt.Sprintf("Airports in database: %d", r.AirportDBRows),
		fmt.Sprintf("Missing airports in database: %v", r.MissingAirports),
		fmt.Sprintf("Extra airports in database: %v", r.ExtraAirports),
		fmt.Sprintf("Mismatched airport fields: %d", len(r.FieldMismatches)),
	}
	for i, line := range r.FieldMismatches {
		if i == 10 {
			lines = append(lines, "  ...")
			break
		}
		lines = append(lines, "  "+line)
	}
	lines = append(lines,
		fmt.Sprintf("Curated countries CSV rows: %d", r.CountryCSVRows),
		fmt.Sprintf("Countries in database: %d", r.CountryDBRows),
		fmt.Sprintf("Missing countries in database: %v", r.MissingCountries),
		fmt.Sprintf("Extra countries in database: %v", r.ExtraCountries),
		"FTS smoke queries:")
	for _, s := range r.SmokeResults {
		status := "ok"
		if !s.Passed {
			status = "FAILED"
		}
		lines = append(lines, fmt.Sprintf("  %q expecting %s -> %v (%s)", s.Term, s.ExpectIATA, s.Hits, status))
	}
	return lines
}

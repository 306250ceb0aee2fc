package curate

import (
	"errors"
	"testing"

	"github.com/NourAshoush/GlobeLogAssets/internal/models/entities"
)

func airportRow(kind, iata, name, country string) map[string]string {
	return map[string]string{
		"type":          kind,
		"iata_code":     iata,
		"name":          name,
		"latitude_deg":  "25.2528",
		"longitude_deg": "55.3644",
		"continent":     "AS",
		"iso_country":   country,
		"municipality":  "Dubai",
		"icao_code":     "OMDB",
		"gps_code":      "OMDB",
	}
}

var testCountries = map[string]bool{"AE": true, "GB": true}

func TestCurateAirports_FiltersByTypeAndIATA(t *testing.T) {
	rows := []map[string]string{
		airportRow("large_airport", "DXB", "Dubai International Airport", "AE"),
		airportRow("small_airport", "XYZ", "Tiny Field", "AE"),
		airportRow("heliport", "", "Rooftop Pad", "AE"),
		airportRow("medium_airport", "", "No Code Regional", "AE"),
	}

	result, err := CurateAirports(rows, testCountries, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(result.Airports) != 1 {
		t.Fatalf("Expected 1 curated airport, got %d", len(result.Airports))
	}
	if result.Airports[0].IATA != "DXB" {
		t.Errorf("Expected DXB, got %s", result.Airports[0].IATA)
	}
	if result.MissingIATA != 1 {
		t.Errorf("Expected 1 medium/large airport without IATA, got %d", result.MissingIATA)
	}
}

func TestCurateAirports_DuplicateIATAPrefersLarger(t *testing.T) {
	rows := []map[string]string{
		airportRow("medium_airport", "DXB", "Old Dubai Field", "AE"),
		airportRow("large_airport", "DXB", "Dubai International Airport", "AE"),
	}

	result, err := CurateAirports(rows, testCountries, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Airports) != 1 {
		t.Fatalf("Expected 1 curated airport, got %d", len(result.Airports))
	}
	if result.Airports[0].Name != "Dubai International Airport" {
		t.Errorf("Expected the large airport to win, got %q", result.Airports[0].Name)
	}
	if len(result.ReplacedDuplicates) != 1 || result.ReplacedDuplicates[0] != "DXB" {
		t.Errorf("Expected DXB in ReplacedDuplicates, got %v", result.ReplacedDuplicates)
	}
}

func TestCurateAirports_DuplicateIATATieBreaksOnName(t *testing.T) {
	// Same classification either way round: the lexicographically smaller
	// name must win regardless of input order.
	first := airportRow("medium_airport", "ZZZ", "Beta Regional", "GB")
	second := airportRow("medium_airport", "ZZZ", "Alpha Regional", "GB")

	for _, rows := range [][]map[string]string{{first, second}, {second, first}} {
		result, err := CurateAirports(rows, testCountries, nil)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if result.Airports[0].Name != "Alpha Regional" {
			t.Errorf("Expected Alpha Regional to win, got %q", result.Airports[0].Name)
		}
	}
}

func TestCurateAirports_RejectsUnknownCountries(t *testing.T) {
	rows := []map[string]string{
		airportRow("large_airport", "DXB", "Dubai International Airport", "AE"),
		airportRow("large_airport", "AAA", "Phantom International", "XZ"),
	}

	result, err := CurateAirports(rows, testCountries, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Airports) != 1 {
		t.Fatalf("Expected the phantom airport to be excluded, got %d airports", len(result.Airports))
	}
	if len(result.UnknownCountries) != 1 || result.UnknownCountries[0] != "AAA" {
		t.Errorf("Expected AAA flagged for unknown country, got %v", result.UnknownCountries)
	}
}

func TestCurateAirports_KosovoAirportIsAccepted(t *testing.T) {
	row := airportRow("large_airport", "PRN", "Pristina International Airport", "XK")
	countries := map[string]bool{"XK": true}

	result, err := CurateAirports([]map[string]string{row}, countries, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.UnknownCountries) != 0 {
		t.Fatalf("Expected no unknown-country rejections, got %v", result.UnknownCountries)
	}
	if len(result.Airports) != 1 || result.Airports[0].IATA != "PRN" {
		t.Errorf("Expected PRN curated, got %+v", result.Airports)
	}
}

func TestCurateAirports_AppliesTimezones(t *testing.T) {
	rows := []map[string]string{
		airportRow("large_airport", "DXB", "Dubai International Airport", "AE"),
		airportRow("large_airport", "LHR", "Heathrow Airport", "GB"),
	}
	timezones := map[string]entities.TimezoneEntry{
		"DXB": {Timezone: "Asia/Dubai", CountryCode: "AE"},
	}

	result, err := CurateAirports(rows, testCountries, timezones)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	byIATA := make(map[string]entities.Airport)
	for _, a := range result.Airports {
		byIATA[a.IATA] = a
	}
	if byIATA["DXB"].Timezone != "Asia/Dubai" {
		t.Errorf("Expected Asia/Dubai for DXB, got %q", byIATA["DXB"].Timezone)
	}
	if byIATA["LHR"].Timezone != "" {
		t.Errorf("Expected empty timezone for LHR, got %q", byIATA["LHR"].Timezone)
	}
}

func TestCurateAirports_BadCoordinatesAreSchemaViolations(t *testing.T) {
	row := airportRow("large_airport", "DXB", "Dubai International Airport", "AE")
	row["latitude_deg"] = "not-a-number"

	_, err := CurateAirports([]map[string]string{row}, testCountries, nil)
	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("Expected ErrSchemaViolation, got %v", err)
	}

	row = airportRow("large_airport", "DXB", "Dubai International Airport", "AE")
	row["latitude_deg"] = "123.5"
	_, err = CurateAirports([]map[string]string{row}, testCountries, nil)
	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("Expected ErrSchemaViolation for out-of-range latitude, got %v", err)
	}
}

func TestCurateAirports_SortsByIATA(t *testing.T) {
	rows := []map[string]string{
		airportRow("large_airport", "LHR", "Heathrow Airport", "GB"),
		airportRow("large_airport", "DXB", "Dubai International Airport", "AE"),
		airportRow("medium_airport", "AAL", "Aalborg Airport", "GB"),
	}

	result, err := CurateAirports(rows, testCountries, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	got := []string{}
	for _, a := range result.Airports {
		got = append(got, a.IATA)
	}
	want := []string{"AAL", "DXB", "LHR"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, got)
		}
	}
}

package validate

import (
	"testing"

	"github.com/NourAshoush/GlobeLogAssets/internal/models/entities"
)

func TestValidTimezone(t *testing.T) {
	cases := []struct {
		tz   string
		want bool
	}{
		{"Asia/Dubai", true},
		{"Europe/London", true},
		{"America/Argentina/Ushuaia", true},
		{"America/Port-au-Prince", true},
		{"Etc/GMT+4", true},
		{"", false},
		{"UTC", false},                // no Region/City structure
		{"Mars/Olympus_Mons", false},  // well-formed but not a real zone
		{"asia dubai", false},
	}
	for _, tc := range cases {
		if got := ValidTimezone(tc.tz); got != tc.want {
			t.Errorf("ValidTimezone(%q) = %v, want %v", tc.tz, got, tc.want)
		}
	}
}

func TestVerifyTimezones_CoverageAndMismatches(t *testing.T) {
	airports := []entities.Airport{
		{IATA: "DXB", ISOCountry: "AE", Timezone: "Asia/Dubai"},
		{IATA: "LHR", ISOCountry: "GB", Timezone: ""},
		{IATA: "GYD", ISOCountry: "AZ", Timezone: "Asia/Baku"},
	}
	source := map[string]entities.TimezoneEntry{
		"DXB": {Timezone: "Asia/Dubai", CountryCode: "AE"},
		"GYD": {Timezone: "Asia/Baku", CountryCode: "RU"},
	}

	report := VerifyTimezones(airports, source)

	if report.Covered != 2 {
		t.Errorf("Expected 2 covered airports, got %d", report.Covered)
	}
	if len(report.Uncovered) != 1 || report.Uncovered[0] != "LHR" {
		t.Errorf("Expected LHR uncovered, got %v", report.Uncovered)
	}
	if len(report.Mismatches) != 1 {
		t.Fatalf("Expected 1 country mismatch, got %v", report.Mismatches)
	}
	m := report.Mismatches[0]
	if m.IATA != "GYD" || m.Curated != "AZ" || m.SourceCountry != "RU" {
		t.Errorf("Unexpected mismatch: %+v", m)
	}
	if report.OK() {
		t.Error("Expected report to fail")
	}
	if got := report.Coverage(); got < 0.66 || got > 0.67 {
		t.Errorf("Unexpected coverage %v", got)
	}
}

func TestVerifyTimezones_FullCoveragePasses(t *testing.T) {
	airports := []entities.Airport{
		{IATA: "DXB", ISOCountry: "AE", Timezone: "Asia/Dubai"},
	}
	source := map[string]entities.TimezoneEntry{
		"DXB": {Timezone: "Asia/Dubai", CountryCode: "AE"},
	}

	report := VerifyTimezones(airports, source)
	if !report.OK() {
		t.Fatalf("Expected report to pass, got %+v", report)
	}
	if report.Coverage() != 1.0 {
		t.Errorf("Expected full coverage, got %v", report.Coverage())
	}
}

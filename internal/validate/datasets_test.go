package validate

import (
	"testing"

	"github.com/NourAshoush/GlobeLogAssets/internal/models/entities"
)

func TestValidateDatasets_ReportsBothDifferenceClasses(t *testing.T) {
	countries := []entities.Country{
		{Code: "AE", Name: "United Arab Emirates", Continent: "AS"},
		{Code: "GB", Name: "United Kingdom", Continent: "EU"},
		{Code: "SM", Name: "San Marino", Continent: "EU"},
	}
	airports := []entities.Airport{
		{IATA: "DXB", ISOCountry: "AE"},
		{IATA: "LHR", ISOCountry: "GB"},
		{IATA: "AAA", ISOCountry: "ZY"},
	}

	report := ValidateDatasets(countries, airports)

	if report.OK() {
		t.Fatal("Expected validation to fail: ZY is not a curated country")
	}
	if len(report.MissingCountries) != 1 || report.MissingCountries[0].Key != "ZY" {
		t.Errorf("Expected ZY as missing country, got %+v", report.MissingCountries)
	}
	if len(report.CountriesWithoutAirports) != 1 || report.CountriesWithoutAirports[0].Key != "SM" {
		t.Errorf("Expected SM without airports, got %+v", report.CountriesWithoutAirports)
	}
	if report.CountryTotal != 3 || report.AirportTotal != 3 {
		t.Errorf("Unexpected totals: %+v", report)
	}
}

func TestValidateDatasets_CleanDatasetsPass(t *testing.T) {
	countries := []entities.Country{
		{Code: "AE", Name: "United Arab Emirates", Continent: "AS"},
	}
	airports := []entities.Airport{
		{IATA: "DXB", ISOCountry: "AE"},
		{IATA: "AUH", ISOCountry: "AE"},
	}

	report := ValidateDatasets(countries, airports)
	if !report.OK() {
		t.Fatalf("Expected clean validation, got %+v", report)
	}
	if len(report.CountriesWithoutAirports) != 0 {
		t.Errorf("Expected no airport gaps, got %+v", report.CountriesWithoutAirports)
	}
}

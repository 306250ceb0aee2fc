package validate

import (
	"fmt"

	"github.com/NourAshoush/GlobeLogAssets/internal/models/entities"
)

// DatasetReport reconciles the curated country set against the country codes
// referenced by the curated airports.
type DatasetReport struct {
	CountryTotal int
	AirportTotal int
	// MissingCountries are airport country codes with no curated country.
	// Any entry is a data integrity failure.
	MissingCountries []Finding
	// CountriesWithoutAirports are curated countries no airport references.
	// Expected for micro-states; informational only.
	CountriesWithoutAirports []Finding
}

// ValidateDatasets compares the curated country and airport tables.
func ValidateDatasets(countries []entities.Country, airports []entities.Airport) *DatasetReport {
	names := make(map[string]string, len(countries))
	countryCodes := make([]string, 0, len(countries))
	for _, c := range countries {
		names[c.Code] = c.Name
		countryCodes = append(countryCodes, c.Code)
	}

	airportCountries := make([]string, 0, len(airports))
	for _, a := range airports {
		airportCountries = append(airportCountries, a.ISOCountry)
	}

	findings := Reconcile(
		NewKeySet("curated countries", countryCodes...),
		NewKeySet("airport country references", airportCountries...),
		SeverityInfo,
		SeverityError,
	)

	report := &DatasetReport{
		CountryTotal: len(countries),
		AirportTotal: len(airports),
	}
	for _, f := range Filter(findings, SeverityError) {
		report.MissingCountries = append(report.MissingCountries, f)
	}
	for _, f := range Filter(findings, SeverityInfo) {
		f.Message = fmt.Sprintf("%s has no curated airports", names[f.Key])
		report.CountriesWithoutAirports = append(report.CountriesWithoutAirports, f)
	}
	return report
}

// OK reports whether the datasets are releasable.
func (r *DatasetReport) OK() bool {
	return len(r.MissingCountries) == 0
}

// Lines renders the report for the operator.
func (r *DatasetReport) Lines() []string {
	lines := []string{
		fmt.Sprintf("Loaded %d countries and %d airports.", r.CountryTotal, r.AirportTotal),
	}
	if len(r.MissingCountries) == 0 {
		lines = append(lines, "All airport country codes are present in curated countries.")
	} else {
		lines = append(lines, "Countries referenced by airports but missing from curated countries:")
		for _, f := range r.MissingCountries {
			lines = append(lines, "  "+f.Key)
		}
	}
	if len(r.CountriesWithoutAirports) == 0 {
		lines = append(lines, "Every curated country has at least one curated airport.")
	} else {
		lines = append(lines, "Countries with no curated airports:")
		for _, f := range r.CountriesWithoutAirports {
			lines = append(lines, fmt.Sprintf("  %s – %s", f.Key, f.Message))
		}
		lines = append(lines, fmt.Sprintf("Total without airports: %d", len(r.CountriesWithoutAirports)))
	}
	return lines
}

package validate

import (
	"fmt"
	"regexp"
	"time"
	// The zone lookup must not depend on the host having a tzdata package.
	_ "time/tzdata"

	"github.com/NourAshoush/GlobeLogAssets/internal/models/entities"
)

// ianaZonePattern matches Region/City style identifiers, including
// multi-segment zones such as America/Argentina/Ushuaia.
var ianaZonePattern = regexp.MustCompile(`^[A-Za-z_]+(?:/[A-Za-z0-9+_-]+)+$`)

// ValidTimezone reports whether tz is a syntactically valid IANA Region/City
// identifier that resolves against the embedded tzdata.
func ValidTimezone(tz string) bool {
	if !ianaZonePattern.MatchString(tz) {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// CountryMismatch is an airport whose upstream timezone record claims a
// different country than the curated airport table. Each one needs a manual
// override authored before the timezone source can be trusted for it.
type CountryMismatch struct {
	IATA          string
	Curated       string
	SourceCountry string
}

// TimezoneReport summarizes timezone coverage over the curated airports.
type TimezoneReport struct {
	AirportTotal int
	Covered      int
	// Uncovered lists airports whose timezone is empty or not a valid IANA
	// identifier.
	Uncovered []string
	// Mismatches lists disagreements between the curated country and the
	// country the timezone source reports.
	Mismatches []CountryMismatch
}

// VerifyTimezones checks every curated airport for a valid IANA timezone and
// cross-checks country codes against the (override-merged) timezone source.
func VerifyTimezones(airports []entities.Airport, source map[string]entities.TimezoneEntry) *TimezoneReport {
	report := &TimezoneReport{AirportTotal: len(airports)}
	for _, a := range airports {
		if ValidTimezone(a.Timezone) {
			report.Covered++
		} else {
			report.Uncovered = append(report.Uncovered, a.IATA)
		}
		entry, ok := source[a.IATA]
		if ok && entry.CountryCode != "" && entry.CountryCode != a.ISOCountry {
			report.Mismatches = append(report.Mismatches, CountryMismatch{
				IATA:          a.IATA,
				Curated:       a.ISOCountry,
				SourceCountry: entry.CountryCode,
			})
		}
	}
	return report
}

// Coverage is the fraction of curated airports with a valid timezone.
func (r *TimezoneReport) Coverage() float64 {
	if r.AirportTotal == 0 {
		return 0
	}
	return float64(r.Covered) / float64(r.AirportTotal)
}

// OK reports whether coverage is complete and no country mismatches remain.
func (r *TimezoneReport) OK() bool {
	return len(r.Uncovered) == 0 && len(r.Mismatches) == 0
}

// Lines renders the report for the operator.
func (r *TimezoneReport) Lines() []string {
	lines := []string{
		fmt.Sprintf("Curated airports: %d", r.AirportTotal),
		fmt.Sprintf("Covered airports: %d (%.2f%%)", r.Covered, r.Coverage()*100),
		fmt.Sprintf("Missing or invalid timezones: %d", len(r.Uncovered)),
	}
	for _, iata := range r.Uncovered {
		lines = append(lines, "  "+iata)
	}
	lines = append(lines, fmt.Sprintf("Country mismatches: %d", len(r.Mismatches)))
	for _, m := range r.Mismatches {
		lines = append(lines, fmt.Sprintf("  %s: curated=%s, tz_source=%s", m.IATA, m.Curated, m.SourceCountry))
	}
	return lines
}

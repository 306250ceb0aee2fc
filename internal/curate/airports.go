package curate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"

	"github.com/NourAshoush/GlobeLogAssets/internal/models/entities"
)

// allowedAirportTypes are the upstream classifications we keep. Everything
// else (small_airport, heliport, closed, ...) is filtered out.
var allowedAirportTypes = map[string]bool{
	"medium_airport": true,
	"large_airport":  true,
}

// AirportResult is the output of one airport curation pass.
type AirportResult struct {
	Airports []entities.Airport
	// TypeCounts counts the kept airports per upstream classification.
	TypeCounts map[string]int
	// MissingIATA counts medium/large airports dropped for lacking an IATA code.
	MissingIATA int
	// UnknownCountries lists IATA codes whose country is absent from the
	// curated country set. Non-empty means the stage must fail.
	UnknownCountries []string
	// ReplacedDuplicates lists IATA codes where two source rows shared a
	// code and the duplicate policy picked one.
	ReplacedDuplicates []string
}

// candidate pairs a curated airport with the source fields the duplicate
// policy needs.
type candidate struct {
	airport entities.Airport
	kind    string
}

// betterThan implements the duplicate IATA policy: large_airport beats
// medium_airport; within the same classification the lexicographically
// smaller name wins. Deterministic regardless of source row order.
func (c candidate) betterThan(other candidate) bool {
	if c.kind != other.kind {
		return c.kind == "large_airport"
	}
	return c.airport.Name < other.airport.Name
}

// CurateAirports filters the raw airport rows down to medium/large airports
// with IATA codes, verifies coordinates and country references, and merges
// the timezone map into each kept row. countryCodes is the curated country
// set from the country curation stage.
func CurateAirports(
	rows []map[string]string,
	countryCodes map[string]bool,
	timezones map[string]entities.TimezoneEntry,
) (*AirportResult, error) {
	result := &AirportResult{TypeCounts: make(map[string]int)}
	chosen := make(map[string]candidate)
	unknown := make(map[string]bool)

	for _, row := range rows {
		kind := strings.TrimSpace(row["type"])
		if !allowedAirportTypes[kind] {
			continue
		}

		iata := strings.TrimSpace(row["iata_code"])
		if iata == "" {
			result.MissingIATA++
			continue
		}

		lat := strings.TrimSpace(row["latitude_deg"])
		lng := strings.TrimSpace(row["longitude_deg"])
		if err := checkCoordinates(lat, lng); err != nil {
			return nil, fmt.Errorf("%w: airport %q: %v", ErrSchemaViolation, iata, err)
		}

		country := strings.TrimSpace(row["iso_country"])
		if !countryCodes[country] {
			if !unknown[iata] {
				unknown[iata] = true
				result.UnknownCountries = append(result.UnknownCountries, iata)
			}
			continue
		}

		airport := entities.Airport{
			IATA:         iata,
			Name:         strings.TrimSpace(row["name"]),
			LatitudeDeg:  lat,
			LongitudeDeg: lng,
			Continent:    strings.TrimSpace(row["continent"]),
			ISOCountry:   country,
			Municipality: strings.TrimSpace(row["municipality"]),
			Timezone:     timezones[iata].Timezone,
			ICAOCode:     strings.TrimSpace(row["icao_code"]),
			GPSCode:      strings.TrimSpace(row["gps_code"]),
		}

		next := candidate{airport: airport, kind: kind}
		if current, ok := chosen[iata]; ok {
			if next.betterThan(current) {
				chosen[iata] = next
			}
			result.ReplacedDuplicates = append(result.ReplacedDuplicates, iata)
			continue
		}
		chosen[iata] = next
	}

	for _, c := range chosen {
		result.TypeCounts[c.kind]++
		result.Airports = append(result.Airports, c.airport)
	}
	sort.Slice(result.Airports, func(i, j int) bool {
		if result.Airports[i].IATA != result.Airports[j].IATA {
			return result.Airports[i].IATA < result.Airports[j].IATA
		}
		return result.Airports[i].Name < result.Airports[j].Name
	})
	sort.Strings(result.ReplacedDuplicates)
	sort.Strings(result.UnknownCountries)
	return result, nil
}

// checkCoordinates requires parseable decimal degrees forming a valid
// latitude/longitude pair.
func checkCoordinates(lat, lng string) error {
	latDeg, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return fmt.Errorf("bad latitude %q", lat)
	}
	lngDeg, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return fmt.Errorf("bad longitude %q", lng)
	}
	if !s2.LatLngFromDegrees(latDeg, lngDeg).IsValid() {
		return fmt.Errorf("coordinates out of range: %s, %s", lat, lng)
	}
	return nil
}

// Package curate turns the raw upstream source tables into the curated
// country, continent and airport sets. Curation is a full recompute: no
// curated artifact is ever patched in place.
package curate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/NourAshoush/GlobeLogAssets/internal/models/entities"
)

// ErrSchemaViolation marks a source row that fails a structural expectation.
// The stage aborts and names the offending row; nothing is emitted.
var ErrSchemaViolation = errors.New("schema violation")

// ContinentNames maps the seven continent codes to display labels. A country
// referencing any other code is a hard error, not a passthrough.
var ContinentNames = map[string]string{
	"AF": "Africa",
	"AN": "Antarctica",
	"AS": "Asia",
	"EU": "Europe",
	"NA": "North America",
	"OC": "Oceania",
	"SA": "South America",
}

var (
	alpha2Pattern      = regexp.MustCompile(`^[A-Z]{2}$`)
	parentheticals     = regexp.MustCompile(`\s*\(.*?\)`)
	repeatedWhitespace = regexp.MustCompile(`\s{2,}`)
)

// IsISOAlpha2 reports whether code is an ISO 3166-1 alpha-2 code we retain:
// two uppercase letters outside the user-assigned ranges (AA, QM–QZ, XA–XZ,
// ZZ). Upstream placeholder codes such as XP fall in those ranges. XK is
// the exception: user-assigned, but the de facto code for Kosovo and kept
// by the upstream source, so we keep it too.
func IsISOAlpha2(code string) bool {
	if !alpha2Pattern.MatchString(code) {
		return false
	}
	if code == "XK" {
		return true
	}
	switch {
	case code == "AA" || code == "ZZ":
		return false
	case code[0] == 'Q' && code[1] >= 'M':
		return false
	case code[0] == 'X':
		return false
	}
	return true
}

// LoadNameCorrections reads the manual country-name correction file. A
// missing file means no corrections.
func LoadNameCorrections(path string) (map[string]entities.CountryNameCorrection, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]entities.CountryNameCorrection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	corrections := make(map[string]entities.CountryNameCorrection)
	if err := json.Unmarshal(data, &corrections); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return corrections, nil
}

// CleanCountryName strips parenthetical descriptors and collapses whitespace.
func CleanCountryName(name string) string {
	cleaned := strings.TrimSpace(parentheticals.ReplaceAllString(name, ""))
	return repeatedWhitespace.ReplaceAllString(cleaned, " ")
}

// CountryResult is the output of one country curation pass.
type CountryResult struct {
	Countries  []entities.Country
	Continents []entities.Continent
	// Excluded lists raw codes rejected by the ISO alpha-2 check, in input order.
	Excluded []string
}

// CurateCountries filters the raw country rows down to genuine ISO alpha-2
// entries, applies name corrections, and derives the continent table from
// the surviving rows. Duplicate codes and unknown continent codes abort the
// pass with ErrSchemaViolation.
func CurateCountries(rows []map[string]string, corrections map[string]entities.CountryNameCorrection) (*CountryResult, error) {
	result := &CountryResult{}
	seen := make(map[string]bool)

	for _, row := range rows {
		code := strings.TrimSpace(row["code"])
		if code == "" {
			continue
		}
		if !IsISOAlpha2(code) {
			result.Excluded = append(result.Excluded, code)
			continue
		}
		if seen[code] {
			return nil, fmt.Errorf("%w: duplicate country code %q", ErrSchemaViolation, code)
		}
		seen[code] = true

		continent := strings.TrimSpace(row["continent"])
		if _, ok := ContinentNames[continent]; !ok {
			return nil, fmt.Errorf("%w: country %q references unknown continent code %q", ErrSchemaViolation, code, continent)
		}

		name := CleanCountryName(row["name"])
		if correction, ok := corrections[code]; ok {
			name = correction.Name
		}
		if name == "" {
			return nil, fmt.Errorf("%w: country %q has an empty display name", ErrSchemaViolation, code)
		}

		result.Countries = append(result.Countries, entities.Country{
			Code:      code,
			Name:      name,
			Continent: continent,
		})
	}

	result.Continents = deriveContinents(result.Countries)
	return result, nil
}

// deriveContinents returns the distinct continent codes referenced by the
// curated countries, labelled and sorted by (name, code).
func deriveContinents(countries []entities.Country) []entities.Continent {
	seen := make(map[string]bool)
	var continents []entities.Continent
	for _, c := range countries {
		if seen[c.Continent] {
			continue
		}
		seen[c.Continent] = true
		continents = append(continents, entities.Continent{
			Code: c.Continent,
			Name: ContinentNames[c.Continent],
		})
	}
	sort.Slice(continents, func(i, j int) bool {
		if continents[i].Name != continents[j].Name {
			return continents[i].Name < continents[j].Name
		}
		return continents[i].Code < continents[j].Code
	})
	return continents
}

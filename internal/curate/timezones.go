package curate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/NourAshoush/GlobeLogAssets/internal/models/entities"
)

// rawTimezoneRecord is one entry of the upstream airport timezone export.
type rawTimezoneRecord struct {
	Code        string `json:"code"`
	Timezone    string `json:"timezone"`
	CountryCode string `json:"countryCode"`
}

// LoadTimezoneSource reads the upstream airport timezone export. The export
// contains duplicate IATA codes; the first occurrence wins, matching the
// order the upstream publishes corrections in.
func LoadTimezoneSource(path string) (map[string]entities.TimezoneEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var records []rawTimezoneRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	entries := make(map[string]entities.TimezoneEntry, len(records))
	for _, rec := range records {
		code := strings.ToUpper(strings.TrimSpace(rec.Code))
		if code == "" {
			continue
		}
		if _, ok := entries[code]; ok {
			continue
		}
		entries[code] = entities.TimezoneEntry{
			Timezone:    strings.TrimSpace(rec.Timezone),
			CountryCode: strings.TrimSpace(rec.CountryCode),
		}
	}
	return entries, nil
}

// LoadTimezoneOverrides reads the manual timezone override file. Each value
// is either a bare timezone string or an object with timezone and
// countryCode fields. A missing file means no overrides.
func LoadTimezoneOverrides(path string) (map[string]entities.TimezoneEntry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]entities.TimezoneEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	overrides := make(map[string]entities.TimezoneEntry, len(raw))
	for code, value := range raw {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}

		var entry entities.TimezoneEntry
		var plain string
		if err := json.Unmarshal(value, &plain); err == nil {
			entry.Timezone = strings.TrimSpace(plain)
		} else if err := json.Unmarshal(value, &entry); err != nil {
			return nil, fmt.Errorf("invalid override for %q in %s: %w", code, path, err)
		}
		entry.Timezone = strings.TrimSpace(entry.Timezone)
		entry.CountryCode = strings.TrimSpace(entry.CountryCode)
		if entry.Timezone == "" {
			continue
		}
		overrides[code] = entry
	}
	return overrides, nil
}

// MergeTimezones layers the manual overrides over the upstream source. An
// override without a countryCode keeps the country the source reported.
func MergeTimezones(source, overrides map[string]entities.TimezoneEntry) map[string]entities.TimezoneEntry {
	merged := make(map[string]entities.TimezoneEntry, len(source))
	for code, entry := range source {
		merged[code] = entry
	}
	for code, override := range overrides {
		entry := override
		if entry.CountryCode == "" {
			entry.CountryCode = source[code].CountryCode
		}
		merged[code] = entry
	}
	return merged
}

package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/NourAshoush/GlobeLogAssets/internal/models/entities"
)

// flagExtensions are the asset formats accepted in the flag directory.
var flagExtensions = map[string]bool{
	".pdf": true,
	".svg": true,
	".png": true,
}

// FlagReport reconciles the curated country codes against the flag asset
// directory. The target state is a bijection: one uppercase-named asset per
// country, nothing else.
type FlagReport struct {
	CountryTotal int
	// Missing countries have no asset at all. Blocking.
	Missing []string
	// Miscased countries have an asset whose stem matches only after
	// uppercasing. The contract requires exact uppercase names, so these
	// count as missing. Blocking.
	Miscased []string
	// Duplicates maps a code to the multiple files claiming it. Blocking.
	Duplicates map[string][]string
	// Orphans are asset stems matching no curated country. Warning only.
	Orphans []string
}

// ValidateFlags checks the flag directory against the curated country set.
// No renaming or deletion happens here; discrepancies are reported and left
// to the maintainer.
func ValidateFlags(countries []entities.Country, dir string) (*FlagReport, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read flag directory %s: %w", dir, err)
	}

	// exact maps stems as written on disk; folded maps their uppercased forms.
	exact := make(map[string][]string)
	folded := make(map[string][]string)
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !flagExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		exact[stem] = append(exact[stem], name)
		folded[strings.ToUpper(stem)] = append(folded[strings.ToUpper(stem)], name)
	}

	report := &FlagReport{
		CountryTotal: len(countries),
		Duplicates:   make(map[string][]string),
	}

	codes := make(map[string]bool, len(countries))
	for _, c := range countries {
		codes[c.Code] = true
		files := exact[c.Code]
		switch {
		case len(files) == 0 && len(folded[c.Code]) > 0:
			report.Miscased = append(report.Miscased, c.Code)
		case len(files) == 0:
			report.Missing = append(report.Missing, c.Code)
		case len(files) > 1:
			sort.Strings(files)
			report.Duplicates[c.Code] = files
		}
	}

	// Orphans are judged after case folding so a miscased flag for a real
	// country shows up once, under Miscased.
	for stem := range exact {
		if !codes[strings.ToUpper(stem)] {
			report.Orphans = append(report.Orphans, stem)
		}
	}

	sort.Strings(report.Missing)
	sort.Strings(report.Miscased)
	sort.Strings(report.Orphans)
	return report, nil
}

// OK reports whether every curated country has exactly one correctly named
// asset.
func (r *FlagReport) OK() bool {
	return len(r.Missing) == 0 && len(r.Miscased) == 0 && len(r.Duplicates) == 0
}

// Lines renders the report for the operator.
func (r *FlagReport) Lines() []string {
	lines := []string{
		fmt.Sprintf("Validated %d curated countries against flag assets.", r.CountryTotal),
	}
	if len(r.Missing) > 0 {
		lines = append(lines, fmt.Sprintf("Missing %d flags:", len(r.Missing)))
		for _, code := range r.Missing {
			lines = append(lines, "  "+code)
		}
	}
	if len(r.Miscased) > 0 {
		lines = append(lines, "Flags present only with wrong filename casing: "+strings.Join(r.Miscased, ", "))
	}
	if len(r.Duplicates) > 0 {
		lines = append(lines, "Duplicate flag files detected:")
		codes := make([]string, 0, len(r.Duplicates))
		for code := range r.Duplicates {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			lines = append(lines, fmt.Sprintf("  %s: %s", code, strings.Join(r.Duplicates[code], ", ")))
		}
	}
	if len(r.Orphans) > 0 {
		lines = append(lines, "Flags without matching country codes: "+strings.Join(r.Orphans, ", "))
	}
	if r.OK() {
		lines = append(lines, "Every curated country has a flag asset in the flags directory.")
	}
	return lines
}

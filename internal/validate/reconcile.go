// Package validate implements the consistency checks between curated
// artifacts. Every validator is a variation of one pattern: compare the key
// sets of two related collections and classify each difference as an error,
// a warning, or an expected informational gap.
package validate

import "sort"

// Severity classifies one reconciliation finding.
type Severity string

const (
	// SeverityError blocks a release; the stage exits non-zero.
	SeverityError Severity = "error"
	// SeverityWarning is surfaced but does not block.
	SeverityWarning Severity = "warning"
	// SeverityInfo is an expected gap, listed for the operator.
	SeverityInfo Severity = "info"
)

// KeySet is a named set of natural keys belonging to one artifact.
type KeySet struct {
	Name string
	Keys map[string]bool
}

// NewKeySet builds a KeySet from a list of keys, ignoring empty ones.
func NewKeySet(name string, keys ...string) KeySet {
	set := KeySet{Name: name, Keys: make(map[string]bool, len(keys))}
	for _, k := range keys {
		if k != "" {
			set.Keys[k] = true
		}
	}
	return set
}

// Contains reports whether key is a member of the set.
func (s KeySet) Contains(key string) bool {
	return s.Keys[key]
}

// Finding is one key that exists on only one side of a reconciliation.
type Finding struct {
	Key      string
	Severity Severity
	Message  string
}

// Reconcile computes the symmetric difference between two key sets.
// Keys present only in left are classified with leftOnly, keys present only
// in right with rightOnly. Findings come back sorted by key within each side.
func Reconcile(left, right KeySet, leftOnly, rightOnly Severity) []Finding {
	var findings []Finding
	for _, key := range sortedDifference(left.Keys, right.Keys) {
		findings = append(findings, Finding{
			Key:      key,
			Severity: leftOnly,
			Message:  "present in " + left.Name + " but missing from " + right.Name,
		})
	}
	for _, key := range sortedDifference(right.Keys, left.Keys) {
		findings = append(findings, Finding{
			Key:      key,
			Severity: rightOnly,
			Message:  "present in " + right.Name + " but missing from " + left.Name,
		})
	}
	return findings
}

// Filter returns the findings carrying the given severity.
func Filter(findings []Finding, severity Severity) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.Severity == severity {
			out = append(out, f)
		}
	}
	return out
}

// HasErrors reports whether any finding is blocking.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func sortedDifference(a, b map[string]bool) []string {
	var keys []string
	for k := range a {
		if !b[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

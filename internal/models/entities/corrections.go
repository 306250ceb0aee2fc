package entities

// CountryNameCorrection replaces an upstream display name for one ISO code.
// Reason documents why the upstream value was rejected; it is never applied,
// only kept alongside the correction for the maintainer.
type CountryNameCorrection struct {
	Name   string `json:"name"`
	Reason string `json:"reason,omitempty"`
}

// TimezoneEntry is one airport timezone record, either from the upstream
// timezone source or from the manual override file. CountryCode is the
// country the source believes the airport is in and may be empty.
type TimezoneEntry struct {
	Timezone    string `json:"timezone"`
	CountryCode string `json:"countryCode,omitempty"`
}

package entities

// Country is one row of the curated country table. Continent holds the
// two-letter continent code the country belongs to.
type Country struct {
	Code      string `db:"code"`
	Name      string `db:"name"`
	Continent string `db:"continent"`
}

// Continent is one row of the curated continent table.
type Continent struct {
	Code string `db:"code"`
	Name string `db:"name"`
}

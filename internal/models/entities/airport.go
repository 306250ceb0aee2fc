package entities

// Airport is one row of the curated airport table. Coordinates stay as the
// raw decimal-degree strings from the source so the curated CSV round-trips
// byte for byte; they are parsed only when the database is built.
type Airport struct {
	IATA         string `db:"iata"`
	Name         string `db:"name"`
	LatitudeDeg  string `db:"latitude_deg"`
	LongitudeDeg string `db:"longitude_deg"`
	Continent    string `db:"continent"`
	ISOCountry   string `db:"iso_country"`
	Municipality string `db:"municipality"`
	Timezone     string `db:"timezone"`
	ICAOCode     string `db:"icao_code"`
	GPSCode      string `db:"gps_code"`
}

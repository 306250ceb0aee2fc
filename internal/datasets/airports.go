package datasets

import "github.com/NourAshoush/GlobeLogAssets/internal/models/entities"

// WriteAirports writes the curated airport table in the contract column order.
func WriteAirports(path string, airports []entities.Airport) error {
	rows := make([][]string, 0, len(airports))
	for _, a := range airports {
		rows = append(rows, []string{
			a.IATA, a.Name, a.LatitudeDeg, a.LongitudeDeg, a.Continent,
			a.ISOCountry, a.Municipality, a.Timezone, a.ICAOCode, a.GPSCode,
		})
	}
	return writeCSV(path, AirportColumns, rows)
}

// ReadAirports loads a curated airport table, rejecting files whose header
// does not match the declared schema.
func ReadAirports(path string) ([]entities.Airport, error) {
	rows, err := readCSV(path, AirportColumns)
	if err != nil {
		return nil, err
	}
	airports := make([]entities.Airport, 0, len(rows))
	for _, row := range rows {
		airports = append(airports, entities.Airport{
			IATA:         row[0],
			Name:         row[1],
			LatitudeDeg:  row[2],
			LongitudeDeg: row[3],
			Continent:    row[4],
			ISOCountry:   row[5],
			Municipality: row[6],
			Timezone:     row[7],
			ICAOCode:     row[8],
			GPSCode:      row[9],
		})
	}
	return airports, nil
}

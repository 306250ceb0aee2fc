package datasets

import "github.com/NourAshoush/GlobeLogAssets/internal/models/entities"

// WriteCountries writes the curated country table.
func WriteCountries(path string, countries []entities.Country) error {
	rows := make([][]string, 0, len(countries))
	for _, c := range countries {
		rows = append(rows, []string{c.Code, c.Name, c.Continent})
	}
	return writeCSV(path, CountryColumns, rows)
}

// ReadCountries loads a curated country table, rejecting files whose header
// does not match the declared schema.
func ReadCountries(path string) ([]entities.Country, error) {
	rows, err := readCSV(path, CountryColumns)
	if err != nil {
		return nil, err
	}
	countries := make([]entities.Country, 0, len(rows))
	for _, row := range rows {
		countries = append(countries, entities.Country{
			Code:      row[0],
			Name:      row[1],
			Continent: row[2],
		})
	}
	return countries, nil
}

// WriteContinents writes the curated continent table.
func WriteContinents(path string, continents []entities.Continent) error {
	rows := make([][]string, 0, len(continents))
	for _, c := range continents {
		rows = append(rows, []string{c.Code, c.Name})
	}
	return writeCSV(path, ContinentColumns, rows)
}

// ReadContinents loads a curated continent table.
func ReadContinents(path string) ([]entities.Continent, error) {
	rows, err := readCSV(path, ContinentColumns)
	if err != nil {
		return nil, err
	}
	continents := make([]entities.Continent, 0, len(rows))
	for _, row := range rows {
		continents = append(continents, entities.Continent{Code: row[0], Name: row[1]})
	}
	return continents, nil
}

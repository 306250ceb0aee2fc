package gorm

import "database/sql"

// Airport mirrors the airport table in the built database. Nullable text
// columns use sql.NullString so empty CSV fields become NULL rather than
// empty strings.
type Airport struct {
	IATA          string         `gorm:"column:iata;primaryKey"`
	Name          string         `gorm:"column:name;not null"`
	Municipality  sql.NullString `gorm:"column:municipality"`
	Latitude      float64        `gorm:"column:latitude;not null"`
	Longitude     float64        `gorm:"column:longitude;not null"`
	ContinentCode string         `gorm:"column:continent_code;not null"`
	CountryCode   string         `gorm:"column:country_code;not null"`
	Timezone      sql.NullString `gorm:"column:timezone"`
	ICAOCode      sql.NullString `gorm:"column:icao_code"`
	GPSCode       sql.NullString `gorm:"column:gps_code"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airport"
}

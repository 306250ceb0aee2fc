package gorm

// Continent mirrors the continent table in the built database.
type Continent struct {
	Code string `gorm:"column:code;primaryKey"`
	Name string `gorm:"column:name;not null"`
}

// TableName specifies the table name for GORM
func (Continent) TableName() string {
	return "continent"
}

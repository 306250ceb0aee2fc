package gorm

// Country mirrors the country table in the built database.
type Country struct {
	Code          string `gorm:"column:code;primaryKey"`
	Name          string `gorm:"column:name;not null"`
	ContinentCode string `gorm:"column:continent_code;not null"`
}

// TableName specifies the table name for GORM
func (Country) TableName() string {
	return "country"
}

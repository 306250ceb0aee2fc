package repositories

import (
	"context"

	"github.com/NourAshoush/GlobeLogAssets/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// CountryRepository handles country table operations
type CountryRepository struct {
	db *gormlib.DB
}

// NewCountryRepository creates a new country repository
func NewCountryRepository(db *gormlib.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

// FindByCode finds a country by its ISO alpha-2 code
func (r *CountryRepository) FindByCode(ctx context.Context, code string) (*gorm.Country, error) {
	var country gorm.Country

	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&country).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &country, nil
}

// BatchInsert inserts multiple countries
func (r *CountryRepository) BatchInsert(ctx context.Context, countries []gorm.Country) error {
	return r.db.WithContext(ctx).
		CreateInBatches(countries, 100).Error
}

// Count returns total number of countries
func (r *CountryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.Country{}).Count(&count).Error
	return count, err
}

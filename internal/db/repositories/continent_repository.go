package repositories

import (
	"context"

	"github.com/NourAshoush/GlobeLogAssets/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// ContinentRepository handles continent table operations
type ContinentRepository struct {
	db *gormlib.DB
}

// NewContinentRepository creates a new continent repository
func NewContinentRepository(db *gormlib.DB) *ContinentRepository {
	return &ContinentRepository{db: db}
}

// BatchInsert inserts multiple continents
func (r *ContinentRepository) BatchInsert(ctx context.Context, continents []gorm.Continent) error {
	return r.db.WithContext(ctx).
		CreateInBatches(continents, 100).Error
}

// Count returns total number of continents
func (r *ContinentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.Continent{}).Count(&count).Error
	return count, err
}

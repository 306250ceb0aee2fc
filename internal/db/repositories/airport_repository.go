package repositories

import (
	"context"

	"github.com/NourAshoush/GlobeLogAssets/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AirportRepository handles airport table operations
type AirportRepository struct {
	db *gormlib.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// FindByIATA finds an airport by IATA code (case-insensitive)
func (r *AirportRepository) FindByIATA(ctx context.Context, iata string) (*gorm.Airport, error) {
	var airport gorm.Airport

	err := r.db.WithContext(ctx).
		Where("UPPER(iata) = UPPER(?)", iata).
		First(&airport).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &airport, nil
}

// BatchInsert inserts multiple airports
func (r *AirportRepository) BatchInsert(ctx context.Context, airports []gorm.Airport) error {
	return r.db.WithContext(ctx).
		CreateInBatches(airports, 100).Error
}

// Count returns total number of airports
func (r *AirportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.Airport{}).Count(&count).Error
	return count, err
}

// AirportSearchHit is one full-text search result.
type AirportSearchHit struct {
	IATA         string `gorm:"column:iata"`
	Name         string `gorm:"column:name"`
	Municipality string `gorm:"column:municipality"`
}

// Search runs a token query against the airport_search FTS index, best
// matches first.
func (r *AirportRepository) Search(ctx context.Context, term string, limit int) ([]AirportSearchHit, error) {
	var hits []AirportSearchHit
	err := r.db.WithContext(ctx).Raw(`
		SELECT a.iata AS iata,
		       a.name AS name,
		       IFNULL(a.municipality, '') AS municipality
		FROM airport_search s
		JOIN airport a ON a.rowid = s.rowid
		WHERE airport_search MATCH ?
		ORDER BY rank
		LIMIT ?`, term, limit).
		Scan(&hits).Error
	if err != nil {
		return nil, err
	}
	return hits, nil
}

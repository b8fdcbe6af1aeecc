package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"peakparty/internal/models/db_models"
)

type LocationRepository interface {
	ListAll(ctx context.Context) ([]db_models.Location, error)
	FindByID(ctx context.Context, id int64) (*db_models.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) ListAll(ctx context.Context) ([]db_models.Location, error) {
	var locations []db_models.Location
	if err := r.db.WithContext(ctx).Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) FindByID(ctx context.Context, id int64) (*db_models.Location, error) {
	var location db_models.Location
	err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &location, nil
}

package repository

import (
	"context"
	"errors"

	"go-catalog-api/internal/model"

	"gorm.io/gorm"
)

type LocationRepository interface {
	FindCityByID(ctx context.Context, id uint) (*model.City, error)
	WithTx(tx *gorm.DB) LocationRepository
}

type locationRepo struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db}
}

func (r *locationRepo) WithTx(tx *gorm.DB) LocationRepository {
	return &locationRepo{tx}
}

func (r *locationRepo) FindCityByID(ctx context.Context, id uint) (*model.City, error) {
	var city model.City
	if err := r.db.WithContext(ctx).Preload("State").First(&city, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return &city, nil
}

package repository

import (
	"context"

	"go-catalog-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	// Create inserts the order together with its OrderProducts
	Create(ctx context.Context, order *model.Order) error
	FindByReference(ctx context.Context, ref uuid.UUID) (*model.Order, error)
	WithTx(tx *gorm.DB) OrderRepository
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) WithTx(tx *gorm.DB) OrderRepository {
	return &orderRepo{tx}
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepo) FindByReference(ctx context.Context, ref uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("OrderProducts", func(db *gorm.DB) *gorm.DB { return db.Order("order_products.id ASC") }).
		Where("reference = ?", ref).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

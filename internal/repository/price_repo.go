package repository

import (
	"context"
	"errors"

	"go-catalog-api/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceRepository reads contract and price-list rows. It satisfies
// pricing.PriceLookup; when more than one row matches, the lowest id wins.
type PriceRepository interface {
	ContractPrice(ctx context.Context, productID, userID uint) (decimal.Decimal, bool, error)
	PriceListPrice(ctx context.Context, productID, priceListID uint) (decimal.Decimal, bool, error)
	WithTx(tx *gorm.DB) PriceRepository
}

type priceRepo struct {
	db *gorm.DB
}

func NewPriceRepo(db *gorm.DB) PriceRepository {
	return &priceRepo{db}
}

func (r *priceRepo) WithTx(tx *gorm.DB) PriceRepository {
	return &priceRepo{tx}
}

func (r *priceRepo) ContractPrice(ctx context.Context, productID, userID uint) (decimal.Decimal, bool, error) {
	var row model.ContractList
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Order("id ASC").
		First(&row).Error
	return priceOf(row.Price, err)
}

func (r *priceRepo) PriceListPrice(ctx context.Context, productID, priceListID uint) (decimal.Decimal, bool, error) {
	var row model.ProductPriceList
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND price_list_id = ?", productID, priceListID).
		Order("id ASC").
		First(&row).Error
	return priceOf(row.Price, err)
}

func priceOf(price decimal.Decimal, err error) (decimal.Decimal, bool, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}
	return price, true, nil
}

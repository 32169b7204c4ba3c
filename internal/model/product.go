package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name        string          `gorm:"type:varchar(64);not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description"`
	SKU         string          `gorm:"column:sku;type:varchar(64);not null" json:"SKU"`
	NetPrice    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"netPrice"`
	Published   *bool           `json:"published"`

	// ResolvedPrice is only filled by queries that join a pricing context.
	ResolvedPrice decimal.NullDecimal `gorm:"->;-:migration" json:"-"`

	// Relasi
	ProductPriceLists []ProductPriceList `json:"-"`
	ContractLists     []ContractList     `json:"-"`
	ProductCategories []ProductCategory  `json:"-"`
	OrderProducts     []OrderProduct     `json:"-"`
}

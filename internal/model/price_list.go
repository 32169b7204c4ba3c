package model

import "github.com/shopspring/decimal"

// PriceList is a named price override table a product may be enrolled in.
// IncreasedPrice is tri-state: true marks prices up, false marks them down,
// nil keeps the product's net price. It is only read while seeding.
type PriceList struct {
	BaseModel
	Name           string `gorm:"type:varchar(64);not null" json:"name"`
	IncreasedPrice *bool  `json:"increased_price"`

	ProductPriceLists []ProductPriceList `json:"-"`
}

// ProductPriceList is the price of one product inside one price list
type ProductPriceList struct {
	BaseModel
	ProductID   uint            `gorm:"not null;uniqueIndex:idx_product_price_list" json:"product_id"`
	Product     *Product        `json:"-"`
	PriceListID uint            `gorm:"not null;uniqueIndex:idx_product_price_list" json:"price_list_id"`
	PriceList   *PriceList      `json:"-"`
	Price       decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"price"`
}

// ContractList is a negotiated net price for a (customer, product) pair
type ContractList struct {
	BaseModel
	UserID    uint            `gorm:"not null;uniqueIndex:idx_contract_user_product" json:"user_id"`
	User      *User           `json:"-"`
	ProductID uint            `gorm:"not null;uniqueIndex:idx_contract_user_product" json:"product_id"`
	Product   *Product        `json:"-"`
	Price     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"price"`
}

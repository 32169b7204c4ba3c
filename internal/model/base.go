package model

import (
	"time"
)

// BaseModel handles the integer ID and standard timestamps
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AllModels lists every table for AutoMigrate
func AllModels() []interface{} {
	return []interface{}{
		&State{}, &City{}, &User{},
		&MainCategory{}, &Category{},
		&Product{}, &ProductCategory{},
		&PriceList{}, &ProductPriceList{}, &ContractList{},
		&Order{}, &OrderProduct{},
	}
}

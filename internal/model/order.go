package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is created once together with all of its lines and never changes afterwards
type Order struct {
	BaseModel
	Reference  uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"reference"`
	OrderDate  time.Time       `gorm:"not null" json:"order_date"`
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	User       *User           `json:"-"`
	Address    string          `gorm:"type:varchar(128)" json:"address"`
	Email      string          `gorm:"type:varchar(128)" json:"email"`
	Phone      string          `gorm:"type:varchar(64)" json:"phone"`
	CityID     uint            `gorm:"not null;index" json:"city_id"`
	City       *City           `json:"-"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"total_price"`
	Discount   *int            `json:"discount"`

	OrderProducts []OrderProduct `json:"order_products,omitempty"`
}

// Hook Before Create untuk generate reference otomatis
func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.Reference == uuid.Nil {
		o.Reference = uuid.New()
	}
	return
}

// OrderProduct snapshots the charged unit price, VAT and line discount at order time
type OrderProduct struct {
	BaseModel
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Product   *Product        `json:"-"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"unit_price"`
	VAT       int             `gorm:"column:vat" json:"vat"`
	Discount  *int            `json:"discount"`
}

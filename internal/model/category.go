package model

// MainCategory is the top level of the two-level category tree
type MainCategory struct {
	BaseModel
	Name        string `gorm:"type:varchar(64);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Categories []Category `json:"-"`
}

// Category always belongs to exactly one MainCategory
type Category struct {
	BaseModel
	Name           string        `gorm:"type:varchar(64);not null" json:"name"`
	Description    string        `gorm:"type:text" json:"description"`
	MainCategoryID uint          `gorm:"not null;index" json:"main_category_id"`
	MainCategory   *MainCategory `json:"main_category,omitempty"`
}

// ProductCategory links products and categories. Its ID keeps the link
// insertion order.
type ProductCategory struct {
	BaseModel
	ProductID  uint      `gorm:"not null;index" json:"product_id"`
	Product    *Product  `json:"-"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   *Category `json:"category,omitempty"`
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/pricing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SortColumns maps the public sort keys to product columns
var SortColumns = map[string]string{
	"name":        "name",
	"netPrice":    "net_price",
	"SKU":         "sku",
	"description": "description",
	"published":   "published",
}

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

type Sort struct {
	Field string
	Order string
}

type ProductFilters struct {
	Name         string
	CategoryName string
	CategoryID   uint
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
}

type ProductQuery struct {
	Offset  int
	Limit   int
	Sort    *Sort
	Filters ProductFilters
	Pricing pricing.Context
}

type ProductRepository interface {
	List(ctx context.Context, q ProductQuery) ([]model.Product, int64, error)
	Count(ctx context.Context, f ProductFilters) (int64, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	WithTx(tx *gorm.DB) ProductRepository
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) WithTx(tx *gorm.DB) ProductRepository {
	return &productRepo{tx}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// List returns one page of products matching q and the total number of
// matches. With a pricing context each product's ResolvedPrice is selected
// in the same query.
func (r *productRepo) List(ctx context.Context, q ProductQuery) ([]model.Product, int64, error) {
	orderBy, err := sortClause(q.Sort)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.Count(ctx, q.Filters)
	if err != nil {
		return nil, 0, err
	}

	query := withPricing(r.filtered(ctx, q.Filters), q.Pricing)
	query = preloadCategories(query)
	for _, o := range orderBy {
		query = query.Order(o)
	}

	var products []model.Product
	if err := query.Offset(q.Offset).Limit(q.Limit).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

// Count applies the same predicate as List, ignoring paging and pricing
func (r *productRepo) Count(ctx context.Context, f ProductFilters) (int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// FindByID loads a product with its categories, price-list and contract rows
func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := preloadCategories(r.db.WithContext(ctx)).
		Preload("ProductPriceLists", orderByID("product_price_lists")).
		Preload("ContractLists", orderByID("contract_lists")).
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Get loads the bare product row
func (r *productRepo) Get(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) filtered(ctx context.Context, f ProductFilters) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.Product{})

	if f.Name != "" {
		query = query.Where("products.name LIKE ?", "%"+f.Name+"%")
	}
	if f.CategoryName != "" {
		query = query.Where(`EXISTS (
			SELECT 1 FROM product_categories pc
			JOIN categories c ON c.id = pc.category_id
			WHERE pc.product_id = products.id AND c.name = ?)`, f.CategoryName)
	}
	if f.CategoryID != 0 {
		query = query.Where(`EXISTS (
			SELECT 1 FROM product_categories pc
			WHERE pc.product_id = products.id AND pc.category_id = ?)`, f.CategoryID)
	}
	if f.MinPrice != nil {
		query = query.Where("products.net_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("products.net_price <= ?", *f.MaxPrice)
	}
	return query
}

// withPricing left-joins the lowest-id contract or price-list row so that
// products without an entry keep their net price.
func withPricing(query *gorm.DB, pc pricing.Context) *gorm.DB {
	if userID, ok := pc.UserID(); ok {
		return query.
			Select("products.*, COALESCE(cl.price, products.net_price) AS resolved_price").
			Joins(`LEFT JOIN contract_lists cl ON cl.id = (
				SELECT MIN(c2.id) FROM contract_lists c2
				WHERE c2.product_id = products.id AND c2.user_id = ?)`, userID)
	}
	if priceListID, ok := pc.PriceListID(); ok {
		return query.
			Select("products.*, COALESCE(ppl.price, products.net_price) AS resolved_price").
			Joins(`LEFT JOIN product_price_lists ppl ON ppl.id = (
				SELECT MIN(p2.id) FROM product_price_lists p2
				WHERE p2.product_id = products.id AND p2.price_list_id = ?)`, priceListID)
	}
	return query
}

func sortClause(s *Sort) ([]clause.OrderByColumn, error) {
	byID := clause.OrderByColumn{Column: clause.Column{Table: "products", Name: "id"}}
	if s == nil {
		return []clause.OrderByColumn{byID}, nil
	}

	column, ok := SortColumns[s.Field]
	if !ok {
		return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidSort, s.Field)
	}
	if s.Order != SortAsc && s.Order != SortDesc {
		return nil, fmt.Errorf("%w: unknown order %q", ErrInvalidSort, s.Order)
	}

	return []clause.OrderByColumn{
		{Column: clause.Column{Table: "products", Name: column}, Desc: s.Order == SortDesc},
		byID,
	}, nil
}

func preloadCategories(query *gorm.DB) *gorm.DB {
	return query.
		Preload("ProductCategories", orderByID("product_categories")).
		Preload("ProductCategories.Category.MainCategory")
}

func orderByID(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause.OrderByColumn{Column: clause.Column{Table: table, Name: "id"}})
	}
}

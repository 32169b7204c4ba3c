package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/pricing"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/testdb"
	"go-catalog-api/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) CatalogService {
	return NewCatalogService(repository.NewProductRepo(db), repository.NewCategoryRepo(db))
}

func TestCategoriesFor(t *testing.T) {
	hardware := &model.MainCategory{BaseModel: model.BaseModel{ID: 1}, Name: "Hardware"}
	outdoor := &model.MainCategory{BaseModel: model.BaseModel{ID: 2}, Name: "Outdoor"}
	product := &model.Product{ProductCategories: []model.ProductCategory{
		{Category: &model.Category{BaseModel: model.BaseModel{ID: 7}, Name: "Tools", MainCategoryID: 1, MainCategory: hardware}},
		{Category: &model.Category{BaseModel: model.BaseModel{ID: 3}, Name: "Garden", MainCategoryID: 2, MainCategory: outdoor}},
		{Category: &model.Category{BaseModel: model.BaseModel{ID: 7}, Name: "Tools", MainCategoryID: 1, MainCategory: hardware}},
	}}

	assert.Equal(t, []CategoryView{
		{ID: 7, Name: "Tools", MainCategory: MainCategoryView{ID: 1, Name: "Hardware"}},
		{ID: 3, Name: "Garden", MainCategory: MainCategoryView{ID: 2, Name: "Outdoor"}},
		{ID: 7, Name: "Tools", MainCategory: MainCategoryView{ID: 1, Name: "Hardware"}},
	}, CategoriesFor(product))

	assert.Equal(t, []CategoryView{}, CategoriesFor(&model.Product{}))
}

func TestListProductsPaging(t *testing.T) {
	db := testdb.Open(t)
	for i := 1; i <= 25; i++ {
		testdb.Product(t, db, fmt.Sprintf("Product %02d", i), fmt.Sprintf("SKU-%02d", i), "10.00", true)
	}
	svc := newCatalogService(db)

	page, err := svc.ListProducts(context.Background(), ProductListQuery{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.EqualValues(t, 25, page.TotalItems)
	require.Len(t, page.Items, 10)
	assert.Equal(t, "Product 11", page.Items[0].Name)
	assert.Equal(t, "Product 20", page.Items[9].Name)

	last, err := svc.ListProducts(context.Background(), ProductListQuery{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, last.Items, 5)
	assert.EqualValues(t, 25, last.TotalItems)

	defaults, err := svc.ListProducts(context.Background(), ProductListQuery{})
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, defaults.Page)
	assert.Equal(t, DefaultPageSize, defaults.PageSize)
	assert.Len(t, defaults.Items, 10)
}

func TestListProductsRejectsOverflowingOffset(t *testing.T) {
	db := testdb.Open(t)
	for i := 1; i <= 3; i++ {
		testdb.Product(t, db, fmt.Sprintf("Product %02d", i), fmt.Sprintf("SKU-%02d", i), "10.00", true)
	}
	svc := newCatalogService(db)

	page, err := svc.ListProducts(context.Background(), ProductListQuery{Page: 1000000000000000001, PageSize: 10})
	assert.Nil(t, page)
	var verr *validator.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{validator.MsgPositiveInt}, verr.Errors["page"])

	// the last representable page is still served, just empty
	last, err := svc.ListProducts(context.Background(), ProductListQuery{Page: math.MaxInt/10 + 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, last.Items)
	assert.EqualValues(t, 3, last.TotalItems)
}

func TestValidatePaging(t *testing.T) {
	assert.NoError(t, ValidatePaging(1, 10))
	assert.NoError(t, ValidatePaging(math.MaxInt, 1))
	assert.Error(t, ValidatePaging(0, 10))
	assert.Error(t, ValidatePaging(1, 0))
	assert.Error(t, ValidatePaging(math.MaxInt/2, 3))
}

func TestListProductsPricing(t *testing.T) {
	db := testdb.Open(t)
	drill := testdb.Product(t, db, "Drill", "SKU-1", "50", true)
	testdb.Product(t, db, "Saw", "SKU-2", "20.5", true)
	user := testdb.User(t, db, "ana@example.com", "")
	list := testdb.PriceList(t, db, "Retail")
	testdb.Contract(t, db, user.ID, drill.ID, "45.00")
	testdb.PriceListPrice(t, db, drill.ID, list.ID, "55.00")
	svc := newCatalogService(db)

	prices := func(page *ProductPage) []interface{} {
		out := make([]interface{}, len(page.Items))
		for i, item := range page.Items {
			if item.Price != nil {
				out[i] = *item.Price
			}
		}
		return out
	}

	plain, err := svc.ListProducts(context.Background(), ProductListQuery{})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{nil, nil}, prices(plain))
	assert.Equal(t, "50.00", plain.Items[0].NetPrice)
	assert.Equal(t, "20.50", plain.Items[1].NetPrice)

	customer, err := svc.ListProducts(context.Background(), ProductListQuery{Pricing: pricing.Customer(user.ID)})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"45.00", "20.50"}, prices(customer))

	priceList, err := svc.ListProducts(context.Background(), ProductListQuery{Pricing: pricing.PriceList(list.ID)})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"55.00", "20.50"}, prices(priceList))

	// customer context wins over the price list
	both, err := svc.ListProducts(context.Background(), ProductListQuery{Pricing: pricing.NewContext(user.ID, list.ID)})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"45.00", "20.50"}, prices(both))
}

func TestListProductsInvalidSort(t *testing.T) {
	svc := newCatalogService(testdb.Open(t))

	_, err := svc.ListProducts(context.Background(), ProductListQuery{Sort: &repository.Sort{Field: "price", Order: "asc"}})
	var verr *validator.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Errors, "sortBy")
}

func TestListCategoryProducts(t *testing.T) {
	db := testdb.Open(t)
	drill := testdb.Product(t, db, "Drill", "SKU-1", "50", true)
	testdb.Product(t, db, "Saw", "SKU-2", "20", true)
	tools := testdb.Category(t, db, "Hardware", "Tools")
	testdb.Link(t, db, drill.ID, tools.ID)
	svc := newCatalogService(db)

	page, err := svc.ListCategoryProducts(context.Background(), tools.ID, ProductListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalItems)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Drill", page.Items[0].Name)
	assert.Equal(t, []CategoryView{{ID: tools.ID, Name: "Tools", MainCategory: MainCategoryView{ID: tools.MainCategoryID, Name: "Hardware"}}}, page.Items[0].Categories)

	_, err = svc.ListCategoryProducts(context.Background(), tools.ID+10, ProductListQuery{})
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Category", nf.Entity)
}

func TestGetProduct(t *testing.T) {
	db := testdb.Open(t)
	drill := testdb.Product(t, db, "Drill", "SKU-1", "50", true)
	user := testdb.User(t, db, "ana@example.com", "")
	list := testdb.PriceList(t, db, "Retail")
	testdb.Contract(t, db, user.ID, drill.ID, "45.00")
	testdb.PriceListPrice(t, db, drill.ID, list.ID, "55")
	svc := newCatalogService(db)

	detail, err := svc.GetProduct(context.Background(), drill.ID, pricing.None())
	require.NoError(t, err)
	assert.Nil(t, detail.Price)
	assert.Equal(t, "50.00", detail.NetPrice)
	assert.Equal(t, map[uint]string{list.ID: "55.00"}, detail.PriceListPrices)
	assert.Equal(t, map[uint]string{user.ID: "45.00"}, detail.ContractListPrices)

	detail, err = svc.GetProduct(context.Background(), drill.ID, pricing.Customer(user.ID))
	require.NoError(t, err)
	require.NotNil(t, detail.Price)
	assert.Equal(t, "45.00", *detail.Price)

	detail, err = svc.GetProduct(context.Background(), drill.ID, pricing.PriceList(list.ID+1))
	require.NoError(t, err)
	require.NotNil(t, detail.Price)
	assert.Equal(t, "50.00", *detail.Price)

	_, err = svc.GetProduct(context.Background(), 999, pricing.None())
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Product with id 999 not found.", nf.Error())
}

// Package testdb opens migrated in-memory SQLite databases and inserts
// fixture rows for repository and service tests.
package testdb

import (
	"testing"

	"go-catalog-api/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a fresh in-memory database with every table migrated.
// A single connection keeps the in-memory schema alive for the whole test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

func Price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Product(t testing.TB, db *gorm.DB, name, sku, netPrice string, published bool) model.Product {
	t.Helper()
	p := model.Product{Name: name, SKU: sku, NetPrice: Price(netPrice), Published: &published}
	require.NoError(t, db.Create(&p).Error)
	return p
}

// Category creates a category, and its main category when mainName is new
func Category(t testing.TB, db *gorm.DB, mainName, name string) model.Category {
	t.Helper()
	var main model.MainCategory
	require.NoError(t, db.Where(model.MainCategory{Name: mainName}).FirstOrCreate(&main).Error)

	c := model.Category{Name: name, MainCategoryID: main.ID}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func Link(t testing.TB, db *gorm.DB, productID, categoryID uint) {
	t.Helper()
	require.NoError(t, db.Create(&model.ProductCategory{ProductID: productID, CategoryID: categoryID}).Error)
}

func City(t testing.TB, db *gorm.DB, stateName, name string) model.City {
	t.Helper()
	state := model.State{Name: stateName}
	require.NoError(t, db.Create(&state).Error)

	city := model.City{Name: name, StateID: state.ID}
	require.NoError(t, db.Create(&city).Error)
	return city
}

func User(t testing.TB, db *gorm.DB, email, password string) model.User {
	t.Helper()
	u := model.User{Name: "Test", Surname: "User", Email: email, Phone: "+385 1 000", Address: "Ilica 1"}
	if password != "" {
		require.NoError(t, u.SetPassword(password))
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func PriceList(t testing.TB, db *gorm.DB, name string) model.PriceList {
	t.Helper()
	pl := model.PriceList{Name: name}
	require.NoError(t, db.Create(&pl).Error)
	return pl
}

func PriceListPrice(t testing.TB, db *gorm.DB, productID, priceListID uint, price string) {
	t.Helper()
	row := model.ProductPriceList{ProductID: productID, PriceListID: priceListID, Price: Price(price)}
	require.NoError(t, db.Create(&row).Error)
}

func Contract(t testing.TB, db *gorm.DB, userID, productID uint, price string) {
	t.Helper()
	row := model.ContractList{UserID: userID, ProductID: productID, Price: Price(price)}
	require.NoError(t, db.Create(&row).Error)
}

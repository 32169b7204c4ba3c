package repository

import (
	"context"
	"testing"

	"go-catalog-api/internal/pricing"
	"go-catalog-api/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ pricing.PriceLookup = NewPriceRepo(nil)

func TestPriceRepo(t *testing.T) {
	db := testdb.Open(t)
	repo := NewPriceRepo(db)
	ctx := context.Background()

	product := testdb.Product(t, db, "Drill", "SKU-1", "50.00", true)
	user := testdb.User(t, db, "ana@example.com", "")
	list := testdb.PriceList(t, db, "Retail")
	testdb.Contract(t, db, user.ID, product.ID, "42.10")
	testdb.PriceListPrice(t, db, product.ID, list.ID, "55.00")

	price, ok, err := repo.ContractPrice(ctx, product.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42.10", price.StringFixed(2))

	_, ok, err = repo.ContractPrice(ctx, product.ID, user.ID+1)
	require.NoError(t, err)
	assert.False(t, ok)

	price, ok, err = repo.PriceListPrice(ctx, product.ID, list.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "55.00", price.StringFixed(2))

	_, ok, err = repo.PriceListPrice(ctx, product.ID+1, list.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPriceRepoMatchesListQuery(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	user := testdb.User(t, f.db, "ana@example.com", "")
	testdb.Contract(t, f.db, user.ID, f.products[2].ID, "11.11")

	resolver := pricing.NewResolver(NewPriceRepo(f.db))
	products, _, err := NewProductRepo(f.db).List(ctx, ProductQuery{Limit: 10, Pricing: pricing.Customer(user.ID)})
	require.NoError(t, err)

	for _, p := range products {
		want, err := resolver.Resolve(ctx, &p, pricing.Customer(user.ID))
		require.NoError(t, err)
		require.True(t, p.ResolvedPrice.Valid)
		assert.True(t, want.Equal(p.ResolvedPrice.Decimal), "product %s: %s != %s", p.Name, want, p.ResolvedPrice.Decimal)
	}
}

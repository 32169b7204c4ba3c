package pricing

import (
	"context"
	"fmt"

	"go-catalog-api/internal/model"

	"github.com/shopspring/decimal"
)

// PriceLookup reads contract and price-list rows keyed by product id.
// The bool result is false when no row exists.
type PriceLookup interface {
	ContractPrice(ctx context.Context, productID, userID uint) (decimal.Decimal, bool, error)
	PriceListPrice(ctx context.Context, productID, priceListID uint) (decimal.Decimal, bool, error)
}

type Resolver struct {
	lookup PriceLookup
}

func NewResolver(lookup PriceLookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve returns the net unit price to quote for product under pc, falling
// back to the product's own net price when the context has no entry for it.
func (r *Resolver) Resolve(ctx context.Context, product *model.Product, pc Context) (decimal.Decimal, error) {
	var (
		price decimal.Decimal
		found bool
		err   error
	)

	switch pc.Kind() {
	case KindCustomer:
		userID, _ := pc.UserID()
		price, found, err = r.lookup.ContractPrice(ctx, product.ID, userID)
	case KindPriceList:
		priceListID, _ := pc.PriceListID()
		price, found, err = r.lookup.PriceListPrice(ctx, product.ID, priceListID)
	}
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("resolve price for product %d (%s): %w", product.ID, pc, err)
	}
	if !found {
		return product.NetPrice, nil
	}
	return price, nil
}

// ResolveLoaded applies the same rules to a product whose ContractLists and
// ProductPriceLists are already loaded. Duplicate rows resolve to the lowest id.
func ResolveLoaded(product *model.Product, pc Context) decimal.Decimal {
	switch pc.Kind() {
	case KindCustomer:
		userID, _ := pc.UserID()
		var best *model.ContractList
		for i := range product.ContractLists {
			cl := &product.ContractLists[i]
			if cl.UserID == userID && (best == nil || cl.ID < best.ID) {
				best = cl
			}
		}
		if best != nil {
			return best.Price
		}
	case KindPriceList:
		priceListID, _ := pc.PriceListID()
		var best *model.ProductPriceList
		for i := range product.ProductPriceLists {
			ppl := &product.ProductPriceLists[i]
			if ppl.PriceListID == priceListID && (best == nil || ppl.ID < best.ID) {
				best = ppl
			}
		}
		if best != nil {
			return best.Price
		}
	}
	return product.NetPrice
}

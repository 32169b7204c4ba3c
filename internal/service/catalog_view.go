package service

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/pricing"

	"github.com/shopspring/decimal"
)

type MainCategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CategoryView struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name"`
	MainCategory MainCategoryView `json:"mainCategory"`
}

// ProductItem is a product as listed by the catalog. Price is the resolved
// net price and is only present when the request carried a pricing context.
type ProductItem struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	SKU         string         `json:"SKU"`
	NetPrice    string         `json:"netPrice"`
	Price       *string        `json:"price,omitempty"`
	Published   *bool          `json:"published"`
	Categories  []CategoryView `json:"categories"`
}

type ProductDetail struct {
	ProductItem
	PriceListPrices    map[uint]string `json:"priceListPrices"`
	ContractListPrices map[uint]string `json:"contractListPrices"`
}

type ProductPage struct {
	Items      []ProductItem `json:"items"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalItems int64         `json:"totalItems"`
}

// CategoriesFor flattens the product's category links in link order.
// Links whose category was not loaded are skipped.
func CategoriesFor(product *model.Product) []CategoryView {
	views := make([]CategoryView, 0, len(product.ProductCategories))
	for _, link := range product.ProductCategories {
		if link.Category == nil {
			continue
		}
		view := CategoryView{ID: link.Category.ID, Name: link.Category.Name}
		if main := link.Category.MainCategory; main != nil {
			view.MainCategory = MainCategoryView{ID: main.ID, Name: main.Name}
		} else {
			view.MainCategory = MainCategoryView{ID: link.Category.MainCategoryID}
		}
		views = append(views, view)
	}
	return views
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func newProductItem(product *model.Product, price *decimal.Decimal) ProductItem {
	item := ProductItem{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		SKU:         product.SKU,
		NetPrice:    money(product.NetPrice),
		Published:   product.Published,
		Categories:  CategoriesFor(product),
	}
	if price != nil {
		s := money(*price)
		item.Price = &s
	}
	return item
}

// listItem uses the price selected by the listing query
func listItem(product *model.Product, pc pricing.Context) ProductItem {
	if pc.IsNone() {
		return newProductItem(product, nil)
	}
	price := product.NetPrice
	if product.ResolvedPrice.Valid {
		price = product.ResolvedPrice.Decimal
	}
	return newProductItem(product, &price)
}

func newProductDetail(product *model.Product, pc pricing.Context) ProductDetail {
	var price *decimal.Decimal
	if !pc.IsNone() {
		resolved := pricing.ResolveLoaded(product, pc)
		price = &resolved
	}

	detail := ProductDetail{
		ProductItem:        newProductItem(product, price),
		PriceListPrices:    make(map[uint]string, len(product.ProductPriceLists)),
		ContractListPrices: make(map[uint]string, len(product.ContractLists)),
	}
	for _, ppl := range product.ProductPriceLists {
		if _, seen := detail.PriceListPrices[ppl.PriceListID]; !seen {
			detail.PriceListPrices[ppl.PriceListID] = money(ppl.Price)
		}
	}
	for _, cl := range product.ContractLists {
		if _, seen := detail.ContractListPrices[cl.UserID]; !seen {
			detail.ContractListPrices[cl.UserID] = money(cl.Price)
		}
	}
	return detail
}

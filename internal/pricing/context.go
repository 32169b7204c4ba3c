// Package pricing decides which net price applies to a product and computes
// VAT, line discounts and the order-level volume discount.
package pricing

import "fmt"

type Kind int

const (
	KindNone Kind = iota
	KindCustomer
	KindPriceList
)

func (k Kind) String() string {
	switch k {
	case KindCustomer:
		return "customer"
	case KindPriceList:
		return "priceList"
	default:
		return "none"
	}
}

// Context selects the pricing mechanism for a request: none, one customer's
// contract prices, or one price list.
type Context struct {
	kind Kind
	id   uint
}

func None() Context { return Context{} }

func Customer(userID uint) Context {
	if userID == 0 {
		return None()
	}
	return Context{kind: KindCustomer, id: userID}
}

func PriceList(priceListID uint) Context {
	if priceListID == 0 {
		return None()
	}
	return Context{kind: KindPriceList, id: priceListID}
}

// NewContext builds a context from optional ids (zero means absent).
// A customer id wins over a price-list id.
func NewContext(userID, priceListID uint) Context {
	if userID != 0 {
		return Customer(userID)
	}
	return PriceList(priceListID)
}

func (c Context) Kind() Kind { return c.kind }

func (c Context) IsNone() bool { return c.kind == KindNone }

func (c Context) UserID() (uint, bool) {
	return c.id, c.kind == KindCustomer
}

func (c Context) PriceListID() (uint, bool) {
	return c.id, c.kind == KindPriceList
}

func (c Context) String() string {
	if c.kind == KindNone {
		return "none"
	}
	return fmt.Sprintf("%s(%d)", c.kind, c.id)
}

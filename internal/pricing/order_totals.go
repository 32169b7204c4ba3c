package pricing

import "github.com/shopspring/decimal"

const (
	// DefaultVAT applies to order lines that do not carry their own VAT percentage
	DefaultVAT = 25
	// VolumeDiscountPercent is taken off the order total once it reaches the threshold
	VolumeDiscountPercent = 10
)

var (
	VolumeDiscountThreshold = decimal.NewFromInt(100)
	hundred                 = decimal.NewFromInt(100)
)

// Line is one cart position before pricing
type Line struct {
	NetPrice decimal.Decimal
	Quantity int
	VAT      *int
	Discount *int
}

// PricedLine is a Line with its charged unit price and line total
type PricedLine struct {
	Quantity  int
	UnitPrice decimal.Decimal
	VAT       int
	Discount  *int
	Total     decimal.Decimal
}

type Totals struct {
	Lines    []PricedLine
	Subtotal decimal.Decimal
	Total    decimal.Decimal
	// Discount is the order-level percentage, nil below the threshold
	Discount *int
}

// UnitPrice adds vat percent to net and then takes discount percent (if any)
// off the result. Rounded half away from zero to 2 places.
func UnitPrice(net decimal.Decimal, vat int, discount *int) decimal.Decimal {
	unit := net.Add(percentOf(net, vat))
	if discount != nil {
		unit = unit.Sub(percentOf(unit, *discount))
	}
	return unit.Round(2)
}

func PriceLine(l Line) PricedLine {
	vat := DefaultVAT
	if l.VAT != nil {
		vat = *l.VAT
	}
	unit := UnitPrice(l.NetPrice, vat, l.Discount)
	return PricedLine{
		Quantity:  l.Quantity,
		UnitPrice: unit,
		VAT:       vat,
		Discount:  l.Discount,
		Total:     unit.Mul(decimal.NewFromInt(int64(l.Quantity))),
	}
}

// ApplyVolumeDiscount returns the payable total for subtotal and the
// discount percentage that was applied.
func ApplyVolumeDiscount(subtotal decimal.Decimal) (decimal.Decimal, *int) {
	if subtotal.LessThan(VolumeDiscountThreshold) {
		return subtotal, nil
	}
	pct := VolumeDiscountPercent
	return subtotal.Sub(percentOf(subtotal, pct)).Round(2), &pct
}

// ComputeTotals prices every line and applies the volume discount
func ComputeTotals(lines []Line) Totals {
	totals := Totals{
		Lines:    make([]PricedLine, 0, len(lines)),
		Subtotal: decimal.Zero,
	}
	for _, l := range lines {
		pl := PriceLine(l)
		totals.Lines = append(totals.Lines, pl)
		totals.Subtotal = totals.Subtotal.Add(pl.Total)
	}
	totals.Total, totals.Discount = ApplyVolumeDiscount(totals.Subtotal)
	return totals
}

func percentOf(amount decimal.Decimal, pct int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(pct))).Div(hundred)
}

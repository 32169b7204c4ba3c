package pricing_test

import (
	"context"
	"fmt"
	"testing"

	"go-catalog-api/internal/pricing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type totalsTestContext struct {
	lines  []pricing.Line
	totals pricing.Totals
}

func (c *totalsTestContext) reset() {
	c.lines = nil
	c.totals = pricing.Totals{}
}

func (c *totalsTestContext) addLine(net string, qty int, vat, discount *int) error {
	price, err := decimal.NewFromString(net)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, pricing.Line{NetPrice: price, Quantity: qty, VAT: vat, Discount: discount})
	return nil
}

func (c *totalsTestContext) aLineWithNetPriceAndQuantity(net string, qty int) error {
	return c.addLine(net, qty, nil, nil)
}

func (c *totalsTestContext) aLineWithNetPriceQuantityAndVAT(net string, qty, vat int) error {
	return c.addLine(net, qty, &vat, nil)
}

func (c *totalsTestContext) aLineWithNetPriceQuantityVATAndDiscount(net string, qty, vat, discount int) error {
	return c.addLine(net, qty, &vat, &discount)
}

func (c *totalsTestContext) theOrderTotalsAreComputed() error {
	c.totals = pricing.ComputeTotals(c.lines)
	return nil
}

func (c *totalsTestContext) theUnitPriceOfLineIs(n int, expected string) error {
	if n < 1 || n > len(c.totals.Lines) {
		return fmt.Errorf("line %d does not exist", n)
	}
	return sameAmount("unit price", c.totals.Lines[n-1].UnitPrice, expected)
}

func (c *totalsTestContext) theSubtotalIs(expected string) error {
	return sameAmount("subtotal", c.totals.Subtotal, expected)
}

func (c *totalsTestContext) theTotalIs(expected string) error {
	return sameAmount("total", c.totals.Total, expected)
}

func (c *totalsTestContext) noOrderDiscountIsApplied() error {
	if c.totals.Discount != nil {
		return fmt.Errorf("expected no discount, got %d", *c.totals.Discount)
	}
	return nil
}

func (c *totalsTestContext) theOrderDiscountIsPercent(pct int) error {
	if c.totals.Discount == nil {
		return fmt.Errorf("expected discount %d, got none", pct)
	}
	if *c.totals.Discount != pct {
		return fmt.Errorf("expected discount %d, got %d", pct, *c.totals.Discount)
	}
	return nil
}

func sameAmount(what string, got decimal.Decimal, expected string) error {
	if got.StringFixed(2) != expected {
		return fmt.Errorf("expected %s %s, got %s", what, expected, got.StringFixed(2))
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &totalsTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^a line with net price "([^"]*)" and quantity (\d+)$`, tc.aLineWithNetPriceAndQuantity)
	ctx.Step(`^a line with net price "([^"]*)" and quantity (\d+) and VAT (\d+)$`, tc.aLineWithNetPriceQuantityAndVAT)
	ctx.Step(`^a line with net price "([^"]*)" and quantity (\d+) and VAT (\d+) and discount (\d+)$`, tc.aLineWithNetPriceQuantityVATAndDiscount)
	ctx.Step(`^the order totals are computed$`, tc.theOrderTotalsAreComputed)
	ctx.Step(`^the unit price of line (\d+) is "([^"]*)"$`, tc.theUnitPriceOfLineIs)
	ctx.Step(`^the subtotal is "([^"]*)"$`, tc.theSubtotalIs)
	ctx.Step(`^the total is "([^"]*)"$`, tc.theTotalIs)
	ctx.Step(`^no order discount is applied$`, tc.noOrderDiscountIsApplied)
	ctx.Step(`^the order discount is (\d+) percent$`, tc.theOrderDiscountIsPercent)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

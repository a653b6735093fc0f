package domain

import "github.com/shopspring/decimal"

// DefaultCurrencyPlaces is the minor unit used when none is configured.
const DefaultCurrencyPlaces int32 = 2

// Totals are the financial figures of an order. Nothing but Total is ever rounded,
// and only through Rounded.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	AfterDiscount  decimal.Decimal `json:"afterDiscount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Total          decimal.Decimal `json:"total"`
}

// ComputeTotals is a pure function of the lines and the two rates.
func ComputeTotals(lines []OrderLine, taxRate, discountRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
	}
	discount := subtotal.Mul(discountRate).Shift(-2)
	afterDiscount := subtotal.Sub(discount)
	tax := afterDiscount.Mul(taxRate).Shift(-2)
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		AfterDiscount:  afterDiscount,
		TaxAmount:      tax,
		Total:          afterDiscount.Add(tax),
	}
}

// Rounded returns the total rounded half away from zero to the currency minor unit.
func (t Totals) Rounded(places int32) decimal.Decimal {
	return t.Total.Round(places)
}

// Package pricing computes proforma totals from confirmed line items.
//
// All arithmetic is exact (shopspring/decimal); rounding happens only when a
// figure is formatted for display.
package pricing

import (
	"regexp"
	"strings"

	"andicot_proforma/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	DefaultTaxRatePercent      = decimal.NewFromInt(15)
	DefaultDiscountRatePercent = decimal.Zero
)

// leadingNumber matches what a browser parseFloat accepts at the start of a
// string ("15", "12.5%", ".5", "+3", "1e1").
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// Rates are the global percentages applied to every quote.
type Rates struct {
	TaxRatePercent      decimal.Decimal
	DiscountRatePercent decimal.Decimal
}

// DefaultRates returns the rates used when no configuration is available.
func DefaultRates() Rates {
	return Rates{TaxRatePercent: DefaultTaxRatePercent, DiscountRatePercent: DefaultDiscountRatePercent}
}

// ParseRates parses finanzas.iva / finanzas.descuento. Each value falls back
// to its default independently when blank, non-numeric or negative.
func ParseRates(taxRaw, discountRaw string) Rates {
	return Rates{
		TaxRatePercent:      ParsePercent(taxRaw, DefaultTaxRatePercent),
		DiscountRatePercent: ParsePercent(discountRaw, DefaultDiscountRatePercent),
	}
}

// ParsePercent reads the leading number of raw, returning def when there is
// none or when it is negative.
func ParsePercent(raw string, def decimal.Decimal) decimal.Decimal {
	m := leadingNumber.FindString(strings.TrimSpace(raw))
	if m == "" {
		return def
	}
	m = strings.TrimSuffix(strings.TrimPrefix(m, "+"), ".")
	d, err := decimal.NewFromString(m)
	if err != nil || d.IsNegative() {
		return def
	}
	return d
}

// QuoteTotals is derived from line items and rates; it is never stored.
type QuoteTotals struct {
	Subtotal      decimal.Decimal
	DiscountValue decimal.Decimal
	TaxableBase   decimal.Decimal
	TaxValue      decimal.Decimal
	Total         decimal.Decimal
}

// ComputeTotals is a pure function over items and rates:
//
//	subtotal      = Σ unitPrice × quantity
//	discountValue = subtotal × discount% / 100
//	taxableBase   = subtotal − discountValue
//	taxValue      = taxableBase × tax% / 100
//	total         = taxableBase + taxValue
func ComputeTotals(items []entities.LineItem, rates Rates) QuoteTotals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal())
	}

	discount := subtotal.Mul(rates.DiscountRatePercent).Shift(-2)
	base := subtotal.Sub(discount)
	tax := base.Mul(rates.TaxRatePercent).Shift(-2)

	return QuoteTotals{
		Subtotal:      subtotal,
		DiscountValue: discount,
		TaxableBase:   base,
		TaxValue:      tax,
		Total:         base.Add(tax),
	}
}

// Money renders a currency figure with exactly two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Percent renders a rate as configured, without forced rounding.
func Percent(d decimal.Decimal) string {
	return d.String()
}

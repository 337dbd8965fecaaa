package entities

import "github.com/shopspring/decimal"

// LineItem is one confirmed (service, quantity) pairing of an in-progress
// quote. It lives only as long as the visitor session; Quantity is always at
// least 1.
type LineItem struct {
	UID       string          `json:"uid"`
	ServiceID string          `json:"service_id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is UnitPrice × Quantity, unrounded.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

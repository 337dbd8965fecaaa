package response

import (
	"andicot_proforma/internal/domain/entities"
	"andicot_proforma/internal/domain/pricing"
	"andicot_proforma/internal/usecase"
)

type LineItemResponse struct {
	UID       string `json:"uid"`
	ServiceID string `json:"service_id"`
	Title     string `json:"title"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type RatesResponse struct {
	TaxRatePercent      string `json:"tax_rate_percent"`
	DiscountRatePercent string `json:"discount_rate_percent"`
}

type TotalsResponse struct {
	Subtotal      string `json:"subtotal"`
	DiscountValue string `json:"discount_value"`
	TaxableBase   string `json:"taxable_base"`
	TaxValue      string `json:"tax_value"`
	Total         string `json:"total"`
}

type QuoteResponse struct {
	SessionID         string             `json:"session_id"`
	SelectedServiceID string             `json:"selected_service_id,omitempty"`
	PendingQuantity   int                `json:"pending_quantity"`
	ItemAddedVisible  bool               `json:"item_added_visible"`
	Items             []LineItemResponse `json:"items"`
	Rates             RatesResponse      `json:"rates"`
	Totals            TotalsResponse     `json:"totals"`
}

type AddItemResponse struct {
	Item  LineItemResponse `json:"item"`
	Quote QuoteResponse    `json:"quote"`
}

type MessagingLinkResponse struct {
	URL string `json:"url"`
}

type HandOffResponse struct {
	Message string `json:"message"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		UID:       li.UID,
		ServiceID: li.ServiceID,
		Title:     li.Title,
		UnitPrice: pricing.Money(li.UnitPrice),
		Quantity:  li.Quantity,
		LineTotal: pricing.Money(li.LineTotal()),
	}
}

func FromQuoteView(v usecase.QuoteView) QuoteResponse {
	items := make([]LineItemResponse, 0, len(v.State.Items))
	for _, li := range v.State.Items {
		items = append(items, FromLineItem(li))
	}
	return QuoteResponse{
		SessionID:         v.SessionID,
		SelectedServiceID: v.State.SelectedServiceID,
		PendingQuantity:   v.State.PendingQuantity,
		ItemAddedVisible:  v.State.ItemAddedVisible,
		Items:             items,
		Rates: RatesResponse{
			TaxRatePercent:      pricing.Percent(v.Rates.TaxRatePercent),
			DiscountRatePercent: pricing.Percent(v.Rates.DiscountRatePercent),
		},
		Totals: TotalsResponse{
			Subtotal:      pricing.Money(v.Totals.Subtotal),
			DiscountValue: pricing.Money(v.Totals.DiscountValue),
			TaxableBase:   pricing.Money(v.Totals.TaxableBase),
			TaxValue:      pricing.Money(v.Totals.TaxValue),
			Total:         pricing.Money(v.Totals.Total),
		},
	}
}

// Package quote renders a priced quote for the two outbound channels: a
// WhatsApp deep link and the contact form message.
package quote

import (
	"fmt"
	"net/url"
	"strings"

	"andicot_proforma/internal/domain/entities"
	"andicot_proforma/internal/domain/pricing"
)

const (
	DefaultCompanyName   = "Andicot"
	DefaultBusinessPhone = "593984467411"

	messagingBaseURL  = "https://wa.me/"
	contactFormHeader = "SOLICITUD DE PROFORMA WEB:"
)

// Dispatcher formats quotes. It owns no delivery: callers open the link or
// hand the contact text to the mailbox.
type Dispatcher struct {
	CompanyName   string
	BusinessPhone string
}

func NewDispatcher(companyName, businessPhone string) Dispatcher {
	if strings.TrimSpace(companyName) == "" {
		companyName = DefaultCompanyName
	}
	businessPhone = digitsOnly(businessPhone)
	if businessPhone == "" {
		businessPhone = DefaultBusinessPhone
	}
	return Dispatcher{CompanyName: companyName, BusinessPhone: businessPhone}
}

// MessagingText is the plain body carried by the WhatsApp link.
func (d Dispatcher) MessagingText(items []entities.LineItem, totals pricing.QuoteTotals, rates pricing.Rates) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola, equipo de %s, solicito proforma:\n", d.CompanyName)
	for _, it := range items {
		fmt.Fprintf(&b, "- %dx %s ($%s)\n", it.Quantity, it.Title, pricing.Money(it.UnitPrice))
	}
	b.WriteString("\n")
	writeSummary(&b, totals, rates)
	fmt.Fprintf(&b, "*TOTAL: $%s*", pricing.Money(totals.Total))
	return b.String()
}

// MessagingLink returns https://wa.me/<phone>?text=<percent-encoded body>.
// Newlines travel as %0A and spaces as %20.
func (d Dispatcher) MessagingLink(items []entities.LineItem, totals pricing.QuoteTotals, rates pricing.Rates) string {
	text := d.MessagingText(items, totals, rates)
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return messagingBaseURL + d.BusinessPhone + "?text=" + encoded
}

// ContactFormMessage is the multi-line text pre-filled into the contact form.
// Items are listed without prices.
func (d Dispatcher) ContactFormMessage(items []entities.LineItem, totals pricing.QuoteTotals, rates pricing.Rates) string {
	var b strings.Builder
	b.WriteString(contactFormHeader + "\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %dx %s\n", it.Quantity, it.Title)
	}
	b.WriteString("\n")
	writeSummary(&b, totals, rates)
	fmt.Fprintf(&b, "TOTAL ESTIMADO: $%s", pricing.Money(totals.Total))
	return b.String()
}

func writeSummary(b *strings.Builder, totals pricing.QuoteTotals, rates pricing.Rates) {
	fmt.Fprintf(b, "Subtotal: $%s\n", pricing.Money(totals.Subtotal))
	fmt.Fprintf(b, "Descuento: -$%s\n", pricing.Money(totals.DiscountValue))
	fmt.Fprintf(b, "IVA (%s%%): $%s\n", pricing.Percent(rates.TaxRatePercent), pricing.Money(totals.TaxValue))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

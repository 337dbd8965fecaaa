package entities

import "github.com/shopspring/decimal"

// Service is a catalog entry offered in the quote builder.
//
// Storage model (DynamoDB, table "servicios"):
//   - PK: id
//
// Legacy documents store title/description/price under short keys
// (t, d, p) or long keys (titulo, descripcion, precio_base). Repositories
// normalize both shapes into this struct before anything else sees them.
type Service struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Tags        string          `json:"tags,omitempty"`
	Image       string          `json:"image,omitempty"`
	Icon        string          `json:"icon,omitempty"`
}

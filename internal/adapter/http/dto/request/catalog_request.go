package request

import (
	"strings"

	"andicot_proforma/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ServiceRequest is the admin payload for a catalog service. The id comes
// from the path.
type ServiceRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Tags        string          `json:"tags"`
	Image       string          `json:"image"`
	Icon        string          `json:"icon"`
}

func (r ServiceRequest) ToEntity(id string) entities.Service {
	return entities.Service{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		UnitPrice:   r.UnitPrice,
		Tags:        r.Tags,
		Image:       r.Image,
		Icon:        r.Icon,
	}
}

// BusinessConfigRequest mirrors the admin panel form. Brands may be sent as a
// list or, as the panel edits them, as one comma separated string.
type BusinessConfigRequest struct {
	entities.BusinessConfig
	BrandsText string `json:"brands_text"`
}

func (r BusinessConfigRequest) ToEntity() entities.BusinessConfig {
	cfg := r.BusinessConfig
	if strings.TrimSpace(r.BrandsText) != "" {
		cfg.Brands = strings.Split(r.BrandsText, ",")
	}
	return cfg
}

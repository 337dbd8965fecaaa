package response

import (
	"andicot_proforma/internal/domain/entities"
	"andicot_proforma/internal/domain/pricing"
)

type ServiceResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UnitPrice   string `json:"unit_price"`
	Tags        string `json:"tags,omitempty"`
	Image       string `json:"image,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		UnitPrice:   pricing.Money(s.UnitPrice),
		Tags:        s.Tags,
		Image:       s.Image,
		Icon:        s.Icon,
	}
}

func FromServices(list []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromService(s))
	}
	return out
}

// BusinessConfigResponse carries the document plus the rates the quote
// builder will actually apply.
type BusinessConfigResponse struct {
	entities.BusinessConfig
	Rates RatesResponse `json:"rates"`
}

func FromBusinessConfig(cfg entities.BusinessConfig) BusinessConfigResponse {
	r := pricing.ParseRates(cfg.Finance.TaxRate, cfg.Finance.DiscountRate)
	return BusinessConfigResponse{
		BusinessConfig: cfg,
		Rates: RatesResponse{
			TaxRatePercent:      pricing.Percent(r.TaxRatePercent),
			DiscountRatePercent: pricing.Percent(r.DiscountRatePercent),
		},
	}
}

package interfaces

import (
	"andicot_proforma/internal/domain/entities"
	"context"
)

// IBusinessConfigRepository reads and writes the single site configuration
// document. found is false when the document does not exist yet.

type IBusinessConfigRepository interface {
	Get(ctx context.Context) (cfg entities.BusinessConfig, found bool, err error)
	Save(ctx context.Context, cfg entities.BusinessConfig) error
}

package interfaces

import (
	"andicot_proforma/internal/domain/entities"
	"context"
)

// IServiceRepository abstracts persistence of catalog services.
//
// Implementations normalize legacy document shapes (t/titulo, d/descripcion,
// p/precio_base) before returning a Service. A missing record is reported
// as a zero Service with an empty ID, not as an error.

type IServiceRepository interface {
	List(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Save(ctx context.Context, s entities.Service) (entities.Service, error)
	UpdateImage(ctx context.Context, id, imageURL string) (entities.Service, error)
}

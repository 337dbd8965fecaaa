package interfaces

import (
	"andicot_proforma/internal/domain/entities"
	"context"
)

// IContactMessageRepository abstracts DynamoDB persistence for contact
// submissions and their CRM status.

type IContactMessageRepository interface {
	Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error)
	GetByID(ctx context.Context, id string) (entities.ContactMessage, error)
	List(ctx context.Context) ([]entities.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status entities.ContactStatus) (entities.ContactMessage, error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
}

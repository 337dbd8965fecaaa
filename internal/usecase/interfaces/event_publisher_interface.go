package interfaces

import (
	"andicot_proforma/internal/domain/entities"
	"context"
)

// IContactEventPublisher notifies downstream consumers (email, WhatsApp
// follow-up workers) that a contact message was stored.
type IContactEventPublisher interface {
	PublishContactSubmitted(ctx context.Context, m entities.ContactMessage) error
}

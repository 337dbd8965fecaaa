package response

import (
	"time"

	"andicot_proforma/internal/domain/entities"
)

type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	AINote    string    `json:"ia_note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromContactMessage(m entities.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		Status:    string(m.Status),
		Source:    string(m.Source),
		AINote:    m.AINote,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromContactMessages(list []entities.ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromContactMessage(m))
	}
	return out
}

// ContactStatusesResponse lists the CRM states in display order.
type ContactStatusesResponse struct {
	Statuses []string `json:"statuses"`
}

func FromContactStatuses(list []entities.ContactStatus) ContactStatusesResponse {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, string(s))
	}
	return ContactStatusesResponse{Statuses: out}
}

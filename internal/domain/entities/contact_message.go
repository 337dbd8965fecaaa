package entities

import "time"

// ContactStatus is the CRM workflow state of a contact submission.
//
// The values are stored verbatim and shared with the admin listing views, so
// they must not be renamed.
type ContactStatus string

const (
	ContactStatusPendiente      ContactStatus = "pendiente"
	ContactStatusContactado     ContactStatus = "contactado"
	ContactStatusVisitaAgendada ContactStatus = "visita_agendada"
	ContactStatusFinalizado     ContactStatus = "finalizado"
	ContactStatusDescartado     ContactStatus = "descartado"
)

// ContactStatuses lists the closed set in CRM display order.
var ContactStatuses = []ContactStatus{
	ContactStatusPendiente,
	ContactStatusContactado,
	ContactStatusVisitaAgendada,
	ContactStatusFinalizado,
	ContactStatusDescartado,
}

func (s ContactStatus) Valid() bool {
	for _, v := range ContactStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ContactSource records which entry path created the message.
type ContactSource string

const (
	ContactSourceForm  ContactSource = "form"
	ContactSourceQuote ContactSource = "quote"
)

// DefaultAINote is written on every new submission until the message is
// reviewed.
const DefaultAINote = "Análisis pendiente..."

// ContactMessage is an inbound contact submission persisted in DynamoDB.
//
// Storage model (DynamoDB, table "contact_messages"):
//   - PK: id
type ContactMessage struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	Source    ContactSource `json:"source"`
	AINote    string        `json:"ia_note,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

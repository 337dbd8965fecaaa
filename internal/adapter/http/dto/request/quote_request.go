package request

// SelectServiceRequest picks the service being configured. An empty id
// clears the selection.
type SelectServiceRequest struct {
	ServiceID string `json:"service_id"`
}

// SetQuantityRequest sets the pending quantity; values below 1 are clamped.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// QuoteContactRequest sends the quote to the CRM. Message is optional and
// replaces the generated quote text when set.
type QuoteContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

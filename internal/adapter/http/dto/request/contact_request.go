package request

import "andicot_proforma/internal/usecase"

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (r ContactRequest) ToSubmission() usecase.ContactSubmission {
	return usecase.ContactSubmission{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

package book_appointment

import editDay "github.com/m04kA/SMC-DayBoard/internal/usecase/edit_day"

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	Name    string  `json:"name"`
	Contact string  `json:"contact"` // email или телефон
	Notes   *string `json:"notes,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest() editDay.BookAppointmentRequest {
	return editDay.BookAppointmentRequest{
		Name:    r.Name,
		Contact: r.Contact,
		Notes:   r.Notes,
		Status:  r.Status,
	}
}

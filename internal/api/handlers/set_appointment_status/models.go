package set_appointment_status

import editDay "github.com/m04kA/SMC-DayBoard/internal/usecase/edit_day"

// SetStatusRequest HTTP request model
type SetStatusRequest struct {
	Status string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SetStatusRequest) ToUseCaseRequest() editDay.SetStatusRequest {
	return editDay.SetStatusRequest{Status: r.Status}
}

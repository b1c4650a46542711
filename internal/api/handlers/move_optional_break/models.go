package move_optional_break

import editDay "github.com/m04kA/SMC-DayBoard/internal/usecase/edit_day"

// MoveBreakRequest HTTP request model
type MoveBreakRequest struct {
	ToIndex int `json:"toIndex"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MoveBreakRequest) ToUseCaseRequest() editDay.MoveBreakRequest {
	return editDay.MoveBreakRequest{ToIndex: r.ToIndex}
}

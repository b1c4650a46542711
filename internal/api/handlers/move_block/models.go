package move_block

import editDay "github.com/m04kA/SMC-DayBoard/internal/usecase/edit_day"

// MoveBlockRequest HTTP request model: move-intent от контроллера перетаскивания
type MoveBlockRequest struct {
	FromIndex int `json:"fromIndex"`
	ToIndex   int `json:"toIndex"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MoveBlockRequest) ToUseCaseRequest() editDay.MoveBlockRequest {
	return editDay.MoveBlockRequest{FromIndex: r.FromIndex, ToIndex: r.ToIndex}
}

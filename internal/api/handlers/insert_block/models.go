package insert_block

import editDay "github.com/m04kA/SMC-DayBoard/internal/usecase/edit_day"

// InsertBlockRequest HTTP request model
type InsertBlockRequest struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"` // slot | optional_break
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *InsertBlockRequest) ToUseCaseRequest(allowOverflow bool) editDay.InsertBlockRequest {
	return editDay.InsertBlockRequest{Index: r.Index, Kind: r.Kind, AllowOverflow: allowOverflow}
}

package drag_block

import editDay "github.com/m04kA/SMC-DayBoard/internal/usecase/edit_day"

// DragRequest HTTP request model: записанный жест перетаскивания
// Track - координаты указателя в пикселях таймлайна (heightPx/offsetPx из ответа дня)
type DragRequest struct {
	BlockID   string `json:"blockId"`
	Track     []int  `json:"track"`
	Cancelled bool   `json:"cancelled"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DragRequest) ToUseCaseRequest() editDay.DragRequest {
	return editDay.DragRequest{BlockID: r.BlockID, Track: r.Track, Cancelled: r.Cancelled}
}

package edit_day

// MoveBlockRequest перенос блока с позиции на позицию
type MoveBlockRequest struct {
	FromIndex int `json:"fromIndex" validate:"gte=0"`
	ToIndex   int `json:"toIndex" validate:"gte=0"`
}

// DragRequest записанный жест перетаскивания: траектория указателя в пикселях таймлайна
type DragRequest struct {
	BlockID   string `json:"blockId" validate:"required"`
	Track     []int  `json:"track" validate:"max=500"`
	Cancelled bool   `json:"cancelled"`
}

// InsertBlockRequest вставка блока
type InsertBlockRequest struct {
	Index         int    `json:"index" validate:"gte=0"`
	Kind          string `json:"kind" validate:"required,oneof=slot optional_break mandatory_break"`
	AllowOverflow bool   `json:"-"`
}

// MoveBreakRequest перенос перерыва
type MoveBreakRequest struct {
	ToIndex int `json:"toIndex" validate:"gte=0"`
}

// BookAppointmentRequest создание или изменение записи на слот
type BookAppointmentRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Contact string  `json:"contact" validate:"required,max=200"`
	Notes   *string `json:"notes,omitempty" validate:"omitempty,max=500"`
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=scheduled checked_in completed no_show cancelled"`
}

// SetStatusRequest смена статуса записи
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled checked_in completed no_show cancelled"`
}

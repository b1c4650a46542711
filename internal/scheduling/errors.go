package scheduling

import "errors"

var (
	// ErrNotFound возвращается поисковыми функциями, когда блок не найден
	// Мутации в этом случае возвращают расписание без изменений
	ErrNotFound = errors.New("scheduling: block not found")

	// ErrDayOverflow суммарная длительность блоков превышает рабочий день
	ErrDayOverflow = errors.New("scheduling: schedule exceeds day span")
)

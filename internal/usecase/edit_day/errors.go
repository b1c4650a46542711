package edit_day

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_day: invalid input data")

	// ErrBlockNotFound возвращается, когда блока с таким id нет в расписании дня
	ErrBlockNotFound = errors.New("edit_day: block not found")

	// ErrSlotNotFound возвращается, когда слота с таким id нет в расписании дня
	ErrSlotNotFound = errors.New("edit_day: slot not found")

	// ErrNotASlot возвращается при попытке записи на перерыв
	ErrNotASlot = errors.New("edit_day: block is not a slot")

	// ErrNotOptionalBreak возвращается, когда блок не является техническим перерывом
	ErrNotOptionalBreak = errors.New("edit_day: block is not an optional break")

	// ErrAppointmentNotFound возвращается, когда на слот нет записи
	ErrAppointmentNotFound = errors.New("edit_day: appointment not found")

	// ErrInvalidStatusTransition возвращается при недопустимой смене статуса записи
	ErrInvalidStatusTransition = errors.New("edit_day: invalid status transition")

	// ErrDayOverflow возвращается, когда изменение выталкивает блоки за конец рабочего дня
	ErrDayOverflow = errors.New("edit_day: schedule exceeds working day")

	// ErrDateBusy возвращается, когда день уже изменяется другим запросом
	ErrDateBusy = errors.New("edit_day: date is being modified")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_day: internal error")
)

package scheduling

import (
	"time"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
)

// Все операции чистые: возвращают новое расписание и не трогают аргумент.
// Ненайденный блок - не ошибка: расписание возвращается без изменений.

// InsertBlock вставляет блок на позицию atIndex (прижимается к [0, len])
// Пустой id заменяется сгенерированным; уже существующий id оставляет расписание без изменений
func InsertBlock(schedule domain.Schedule, atIndex int, kind domain.BlockKind, id string) domain.Schedule {
	s := schedule.Clone()
	if !kind.IsValid() {
		return s
	}
	if id == "" {
		id = NewBlockID()
	}
	if _, err := IndexOf(s, id); err == nil {
		return s
	}

	s.Blocks = insertAt(s.Blocks, clamp(atIndex, 0, len(s.Blocks)), domain.Block{ID: id, Kind: kind})
	return s
}

// RemoveBlockAt удаляет блок по индексу вместе с записью на него
// Если удален обязательный перерыв, его вернет Repair перед следующим Reflow
func RemoveBlockAt(schedule domain.Schedule, index int) domain.Schedule {
	s := schedule.Clone()
	if index < 0 || index >= len(s.Blocks) {
		return s
	}

	removed := s.Blocks[index]
	s.Blocks = append(s.Blocks[:index], s.Blocks[index+1:]...)
	delete(s.Appointments, removed.ID)
	return s
}

// RemoveBlock удаляет блок по id
func RemoveBlock(schedule domain.Schedule, blockID string) domain.Schedule {
	index, err := IndexOf(schedule, blockID)
	if err != nil {
		return schedule.Clone()
	}
	return RemoveBlockAt(schedule, index)
}

// MoveBlock вынимает блок с fromIndex и вставляет на toIndex в уже укороченный список
// (семантика splice). toIndex прижимается к [0, len-1].
func MoveBlock(schedule domain.Schedule, fromIndex, toIndex int) domain.Schedule {
	s := schedule.Clone()
	if fromIndex < 0 || fromIndex >= len(s.Blocks) || fromIndex == toIndex {
		return s
	}

	moved := s.Blocks[fromIndex]
	rest := append(s.Blocks[:fromIndex:fromIndex], s.Blocks[fromIndex+1:]...)
	s.Blocks = insertAt(rest, clamp(toIndex, 0, len(rest)), moved)
	return s
}

// MoveMandatoryBreak переносит обязательный перерыв на toIndex
func MoveMandatoryBreak(schedule domain.Schedule, toIndex int) domain.Schedule {
	from, err := FindMandatoryBreak(schedule)
	if err != nil {
		return schedule.Clone()
	}
	return MoveBlock(schedule, from, toIndex)
}

// MoveOptionalBreak переносит технический перерыв breakID на toIndex
func MoveOptionalBreak(schedule domain.Schedule, breakID string, toIndex int) domain.Schedule {
	from, err := IndexOf(schedule, breakID)
	if err != nil || schedule.Blocks[from].Kind != domain.KindOptionalBreak {
		return schedule.Clone()
	}
	return MoveBlock(schedule, from, toIndex)
}

// BookAppointment создает или обновляет запись на слот
// Статус по умолчанию - scheduled. При обновлении CreatedAt исходной записи сохраняется.
func BookAppointment(schedule domain.Schedule, slotBlockID string, details domain.AppointmentDetails, now time.Time) domain.Schedule {
	s := schedule.Clone()

	index, err := IndexOf(s, slotBlockID)
	if err != nil || !s.Blocks[index].IsSlot() {
		return s
	}

	status := domain.StatusScheduled
	if details.Status != nil {
		status = *details.Status
	}

	var notes *string
	if details.Notes != nil {
		n := *details.Notes
		notes = &n
	}

	createdAt := now
	if existing, ok := s.Appointments[slotBlockID]; ok && existing.IsBooked {
		createdAt = existing.CreatedAt
	}

	if s.Appointments == nil {
		s.Appointments = make(map[string]domain.Appointment)
	}
	s.Appointments[slotBlockID] = domain.Appointment{
		Name:      details.Name,
		Contact:   details.Contact,
		Notes:     notes,
		Status:    status,
		CreatedAt: createdAt,
		IsBooked:  true,
	}
	return s
}

// SetAppointmentStatus меняет только статус существующей записи
// Допустимость перехода проверяет вызывающий код (domain.AppointmentStatus.CanTransitionTo)
func SetAppointmentStatus(schedule domain.Schedule, slotBlockID string, status domain.AppointmentStatus) domain.Schedule {
	s := schedule.Clone()
	a, ok := s.Appointments[slotBlockID]
	if !ok {
		return s
	}
	a.Status = status
	s.Appointments[slotBlockID] = a
	return s
}

// ClearAppointment удаляет запись, слот становится свободным
func ClearAppointment(schedule domain.Schedule, slotBlockID string) domain.Schedule {
	s := schedule.Clone()
	delete(s.Appointments, slotBlockID)
	return s
}

// GetAppointment возвращает запись на слот, если она есть
func GetAppointment(schedule domain.Schedule, slotBlockID string) (domain.Appointment, bool) {
	a, ok := schedule.Appointments[slotBlockID]
	if !ok || !a.IsBooked {
		return domain.Appointment{}, false
	}
	return a, true
}

// IndexOf возвращает позицию блока по id
func IndexOf(schedule domain.Schedule, blockID string) (int, error) {
	for i, b := range schedule.Blocks {
		if b.ID == blockID {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// FindMandatoryBreak возвращает позицию первого обязательного перерыва
func FindMandatoryBreak(schedule domain.Schedule) (int, error) {
	for i, b := range schedule.Blocks {
		if b.Kind == domain.KindMandatoryBreak {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

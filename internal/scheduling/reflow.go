package scheduling

import "github.com/m04kA/SMC-DayBoard/internal/domain"

// ScheduleItem блок расписания с вычисленным временем
type ScheduleItem struct {
	Index        int
	BlockID      string
	Kind         domain.BlockKind
	Start        string // HH:MM
	End          string // HH:MM
	StartMinutes int
	EndMinutes   int
	Appointment  *domain.Appointment // nil для свободного слота и перерывов
}

// IsOpenSlot true для слота без записи
func (i ScheduleItem) IsOpenSlot() bool {
	return i.Kind == domain.KindSlot && i.Appointment == nil
}

// OverflowItem блок, не уместившийся до конца рабочего дня
type OverflowItem struct {
	Index       int
	BlockID     string
	Kind        domain.BlockKind
	Appointment *domain.Appointment
}

// NeedsReschedule true, если на вытесненный слот есть запись
func (o OverflowItem) NeedsReschedule() bool {
	return o.Appointment != nil
}

// ReflowOutput производные данные дня; не сохраняются
type ReflowOutput struct {
	Schedule           domain.Schedule // расписание после Repair
	Items              []ScheduleItem
	OpenSlots          []ScheduleItem
	BookedAppointments []ScheduleItem
	Overflow           []OverflowItem
}

// DayFull true, когда свободных слотов нет и есть хотя бы одна запись
func (o ReflowOutput) DayFull() bool {
	return len(o.OpenSlots) == 0 && len(o.BookedAppointments) > 0
}

// NeedsReschedule записи, вытесненные за конец дня
func (o ReflowOutput) NeedsReschedule() []OverflowItem {
	result := make([]OverflowItem, 0)
	for _, item := range o.Overflow {
		if item.NeedsReschedule() {
			result = append(result, item)
		}
	}
	return result
}

// Reflow выводит абсолютное время каждого блока из его позиции
// Расписание сначала проходит Repair, затем обходится от начала дня
// Первый блок, который не помещается до конца дня, останавливает обход:
// он и все следующие попадают в Overflow
func Reflow(schedule domain.Schedule) ReflowOutput {
	s := Repair(schedule)

	out := ReflowOutput{
		Schedule:           s,
		Items:              make([]ScheduleItem, 0, len(s.Blocks)),
		OpenSlots:          make([]ScheduleItem, 0),
		BookedAppointments: make([]ScheduleItem, 0),
		Overflow:           make([]OverflowItem, 0),
	}

	cursor := domain.DayStartMinutes()
	dayEnd := domain.DayEndMinutes()
	stopped := false

	for i, b := range s.Blocks {
		appointment := bookedAppointment(s, b)

		if !stopped && cursor+b.Duration() > dayEnd {
			stopped = true
		}
		if stopped {
			out.Overflow = append(out.Overflow, OverflowItem{
				Index:       i,
				BlockID:     b.ID,
				Kind:        b.Kind,
				Appointment: appointment,
			})
			continue
		}

		item := ScheduleItem{
			Index:        i,
			BlockID:      b.ID,
			Kind:         b.Kind,
			Start:        domain.MinutesToTime(cursor),
			End:          domain.MinutesToTime(cursor + b.Duration()),
			StartMinutes: cursor,
			EndMinutes:   cursor + b.Duration(),
			Appointment:  appointment,
		}
		cursor += b.Duration()

		out.Items = append(out.Items, item)
		if b.IsSlot() {
			if appointment != nil {
				out.BookedAppointments = append(out.BookedAppointments, item)
			} else {
				out.OpenSlots = append(out.OpenSlots, item)
			}
		}
	}

	return out
}

func bookedAppointment(s domain.Schedule, b domain.Block) *domain.Appointment {
	if !b.IsSlot() {
		return nil
	}
	a, ok := s.Appointments[b.ID]
	if !ok || !a.IsBooked {
		return nil
	}
	return &a
}

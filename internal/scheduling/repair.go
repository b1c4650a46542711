package scheduling

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
)

// NewBlockID генерирует идентификатор нового блока
// Переменная, чтобы тесты могли подставить детерминированный генератор
var NewBlockID = uuid.NewString

// repairBreakPosition позиция, куда вставляется обязательный перерыв, если его нет
const repairBreakPosition = 4

// CreateDefaultSchedule строит пустой день: слоты от начала дня и один обязательный перерыв
// на позиции mandatoryBreakPosition (в блоках, не во времени)
// Позиция за пределами дня прижимается к последнему достижимому индексу
func CreateDefaultSchedule(mandatoryBreakPosition int) domain.Schedule {
	slots := (domain.DaySpanMinutes() - domain.MandatoryBreakDuration) / domain.SlotDuration
	if slots < 0 {
		slots = 0
	}

	pos := clamp(mandatoryBreakPosition, 0, slots)

	blocks := make([]domain.Block, 0, slots+1)
	for i := 0; i < slots; i++ {
		if i == pos {
			blocks = append(blocks, domain.Block{ID: NewBlockID(), Kind: domain.KindMandatoryBreak})
		}
		blocks = append(blocks, domain.Block{ID: NewBlockID(), Kind: domain.KindSlot})
	}
	if pos == slots {
		blocks = append(blocks, domain.Block{ID: NewBlockID(), Kind: domain.KindMandatoryBreak})
	}

	return Repair(domain.Schedule{Blocks: blocks})
}

// Repair идемпотентная нормализация расписания перед Reflow и сохранением:
//  1. лишние обязательные перерывы удаляются, остается первый по порядку;
//  2. если обязательного перерыва нет, он вставляется на позицию min(4, len);
//  3. в конец добавляются слоты, пока они помещаются в рабочий день;
//  4. пустые и повторяющиеся id блоков заменяются новыми;
//  5. записи, не ссылающиеся на существующий слот, удаляются.
//
// Лишние блоки сверх рабочего дня Repair не обрезает: их показывает Reflow как Overflow.
func Repair(schedule domain.Schedule) domain.Schedule {
	s := schedule.Clone()

	blocks := make([]domain.Block, 0, len(s.Blocks)+1)
	seenIDs := make(map[string]struct{}, len(s.Blocks))
	hasMandatory := false

	for _, b := range s.Blocks {
		if !b.Kind.IsValid() {
			continue
		}
		if b.Kind == domain.KindMandatoryBreak {
			if hasMandatory {
				continue
			}
			hasMandatory = true
		}
		if _, dup := seenIDs[b.ID]; dup || b.ID == "" {
			b.ID = NewBlockID()
		}
		seenIDs[b.ID] = struct{}{}
		blocks = append(blocks, b)
	}

	if !hasMandatory {
		at := min(repairBreakPosition, len(blocks))
		blocks = insertAt(blocks, at, domain.Block{ID: NewBlockID(), Kind: domain.KindMandatoryBreak})
	}

	total := 0
	for _, b := range blocks {
		total += b.Duration()
	}
	for total+domain.SlotDuration <= domain.DaySpanMinutes() {
		blocks = append(blocks, domain.Block{ID: NewBlockID(), Kind: domain.KindSlot})
		total += domain.SlotDuration
	}

	s.Blocks = blocks
	s.Appointments = pruneAppointments(blocks, s.Appointments)

	return s
}

// pruneAppointments оставляет только записи на существующие слоты
func pruneAppointments(blocks []domain.Block, appointments map[string]domain.Appointment) map[string]domain.Appointment {
	slots := make(map[string]struct{}, len(blocks))
	for _, b := range blocks {
		if b.IsSlot() {
			slots[b.ID] = struct{}{}
		}
	}

	pruned := make(map[string]domain.Appointment, len(appointments))
	for id, a := range appointments {
		if _, ok := slots[id]; !ok || !a.IsBooked {
			continue
		}
		pruned[id] = a
	}
	return pruned
}

func insertAt(blocks []domain.Block, at int, b domain.Block) []domain.Block {
	blocks = append(blocks, domain.Block{})
	copy(blocks[at+1:], blocks[at:])
	blocks[at] = b
	return blocks
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

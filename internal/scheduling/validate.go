package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
)

// ValidationResult сравнение длительности расписания с рабочим днем
type ValidationResult struct {
	Valid        bool
	TotalMinutes int
	MaxMinutes   int
}

// Err возвращает ErrDayOverflow для невалидного результата
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%w: %d of %d minutes", ErrDayOverflow, r.TotalMinutes, r.MaxMinutes)
}

// Validate суммирует длительности блоков; расписание не меняет и не обрезает
func Validate(schedule domain.Schedule) ValidationResult {
	total := schedule.TotalMinutes()
	maxMinutes := domain.DaySpanMinutes()
	return ValidationResult{
		Valid:        total <= maxMinutes,
		TotalMinutes: total,
		MaxMinutes:   maxMinutes,
	}
}

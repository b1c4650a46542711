package dayboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-DayBoard/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-DayBoard/internal/scheduling"
	"github.com/m04kA/SMC-DayBoard/internal/service/dayboard/models"
)

// Service чтение расписания: день, проверка, календарь и предпросмотр переноса
// Ничего не сохраняет
type Service struct {
	scheduleRepo  ScheduleRepository
	breakPosition int
	logger        Logger
}

// NewService создает новый экземпляр сервиса
// breakPosition - позиция обязательного перерыва в еще не сохраненном дне
func NewService(
	scheduleRepo ScheduleRepository,
	breakPosition int,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:  scheduleRepo,
		breakPosition: breakPosition,
		logger:        logger,
	}
}

// GetDay возвращает расписание дня; несохраненный день строится по умолчанию
func (s *Service) GetDay(ctx context.Context, date time.Time) (*models.DayView, error) {
	schedule, err := s.load(ctx, date)
	if err != nil {
		return nil, err
	}

	out := scheduling.Reflow(*schedule)
	if len(out.Overflow) > 0 {
		s.logger.Warn("GetDay: date=%s has %d blocks beyond day end", date.Format(domain.DateFormat), len(out.Overflow))
	}

	return models.FromReflow(date, out), nil
}

// Validate сравнивает суммарную длительность дня с рабочим днем
func (s *Service) Validate(ctx context.Context, date time.Time) (*models.ValidationView, error) {
	schedule, err := s.load(ctx, date)
	if err != nil {
		return nil, err
	}
	return models.FromValidation(date, scheduling.Validate(*schedule)), nil
}

// PreviewMove возвращает расписание, каким оно станет после переноса блока
func (s *Service) PreviewMove(ctx context.Context, date time.Time, fromIndex, toIndex int) (*models.DayView, error) {
	schedule, err := s.load(ctx, date)
	if err != nil {
		return nil, err
	}

	repaired := scheduling.Repair(*schedule)
	if fromIndex < 0 || fromIndex >= len(repaired.Blocks) || toIndex < 0 || toIndex >= len(repaired.Blocks) {
		return nil, fmt.Errorf("%w: move %d -> %d out of range [0, %d)", ErrInvalidInput, fromIndex, toIndex, len(repaired.Blocks))
	}

	moved := scheduling.MoveBlock(repaired, fromIndex, toIndex)
	return models.FromReflow(date, scheduling.Reflow(moved)), nil
}

// GetCalendar возвращает заполненность каждого дня диапазона [from, to]
func (s *Service) GetCalendar(ctx context.Context, from, to time.Time) (*models.CalendarView, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: from %s is after to %s", ErrInvalidDate, from.Format(domain.DateFormat), to.Format(domain.DateFormat))
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days > domain.MaxCalendarDays {
		return nil, fmt.Errorf("%w: range of %d days exceeds %d", ErrInvalidDate, days, domain.MaxCalendarDays)
	}

	s.logger.Info("GetCalendar: fetching summaries from=%s to=%s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	summaries, err := s.scheduleRepo.ListSummaries(ctx, from, to)
	if err != nil {
		s.logger.Error("GetCalendar: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCalendar - repository error: %v", ErrInternal, err)
	}

	saved := make(map[string]scheduleRepo.DaySummary, len(summaries))
	for _, summary := range summaries {
		saved[summary.Date.Format(domain.DateFormat)] = summary
	}

	fresh := scheduling.Reflow(scheduling.CreateDefaultSchedule(s.breakPosition))

	view := &models.CalendarView{
		From: from.Format(domain.DateFormat),
		To:   to.Format(domain.DateFormat),
		Days: make([]models.CalendarDay, 0, days),
	}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(domain.DateFormat)
		if summary, ok := saved[key]; ok {
			view.Days = append(view.Days, models.CalendarDay{
				Date:        key,
				DayFull:     summary.DayFull,
				OpenSlots:   summary.OpenSlots,
				BookedSlots: summary.BookedSlots,
				Saved:       true,
			})
			continue
		}
		view.Days = append(view.Days, models.CalendarDay{
			Date:      key,
			DayFull:   fresh.DayFull(),
			OpenSlots: len(fresh.OpenSlots),
		})
	}

	return view, nil
}

func (s *Service) load(ctx context.Context, date time.Time) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.Get(ctx, date)
	if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		fresh := scheduling.CreateDefaultSchedule(s.breakPosition)
		return &fresh, nil
	}
	if err != nil {
		s.logger.Error("load: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: load - repository error: %v", ErrInternal, err)
	}
	return schedule, nil
}

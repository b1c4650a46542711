package edit_day

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
	"github.com/m04kA/SMC-DayBoard/internal/drag"
	"github.com/m04kA/SMC-DayBoard/internal/infra/lock"
	scheduleRepo "github.com/m04kA/SMC-DayBoard/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-DayBoard/internal/scheduling"
	"github.com/m04kA/SMC-DayBoard/internal/service/dayboard/models"
)

// mutation изменяет загруженное (уже восстановленное Repair) расписание
type mutation func(schedule domain.Schedule) (domain.Schedule, error)

// errUnchanged возвращается мутацией, которой нечего сохранять
var errUnchanged = errors.New("edit_day: schedule unchanged")

// UseCase изменения расписания дня
// Каждая операция: блокировка даты -> сериализуемая транзакция -> загрузка -> изменение -> Repair -> сохранение
type UseCase struct {
	scheduleRepo  ScheduleRepository
	locker        Locker
	txManager     TransactionManager
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
	breakPosition int
	lockTTL       time.Duration
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	scheduleRepo ScheduleRepository,
	locker Locker,
	txManager TransactionManager,
	metrics Metrics,
	breakPosition int,
	lockTTL time.Duration,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		scheduleRepo:  scheduleRepo,
		locker:        locker,
		txManager:     txManager,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
		breakPosition: breakPosition,
		lockTTL:       lockTTL,
	}
}

// MoveBlock переносит блок с позиции FromIndex на ToIndex
func (uc *UseCase) MoveBlock(ctx context.Context, date time.Time, req MoveBlockRequest) (*models.DayView, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	return uc.mutate(ctx, "MoveBlock", date, func(s domain.Schedule) (domain.Schedule, error) {
		last := len(s.Blocks) - 1
		if err := validateIndex("fromIndex", req.FromIndex, last); err != nil {
			return s, err
		}
		if err := validateIndex("toIndex", req.ToIndex, last); err != nil {
			return s, err
		}
		return scheduling.MoveBlock(s, req.FromIndex, req.ToIndex), nil
	})
}

// Drag проигрывает записанный жест перетаскивания и применяет итоговый перенос
// Отмененный жест или жест без смены позиции расписание не меняет:
// день только читается, блокировка и сохранение не выполняются
func (uc *UseCase) Drag(ctx context.Context, date time.Time, req DragRequest) (*models.DayView, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	current, err := uc.load(ctx, date)
	if err != nil {
		uc.logger.Error("Drag: date=%s failed to load: %v", date.Format(domain.DateFormat), err)
		return nil, err
	}
	s := scheduling.Repair(*current)

	_, moved, err := replayDrag(s, req)
	if err != nil {
		uc.logger.Warn("Drag: date=%s rejected: %v", date.Format(domain.DateFormat), err)
		return nil, err
	}
	if !moved {
		uc.logger.Info("Drag: date=%s block_id=%s not moved, cancelled=%t", date.Format(domain.DateFormat), req.BlockID, req.Cancelled)
		return models.FromReflow(date, scheduling.Reflow(s)), nil
	}

	return uc.mutate(ctx, "Drag", date, func(s domain.Schedule) (domain.Schedule, error) {
		// день мог измениться после чтения: жест проигрывается заново
		intent, moved, err := replayDrag(s, req)
		if err != nil {
			return s, err
		}
		if !moved {
			return s, errUnchanged
		}
		return scheduling.MoveBlock(s, intent.FromIndex, intent.ToIndex), nil
	})
}

func replayDrag(s domain.Schedule, req DragRequest) (drag.MoveIntent, bool, error) {
	from, err := scheduling.IndexOf(s, req.BlockID)
	if err != nil {
		return drag.MoveIntent{}, false, fmt.Errorf("%w: %s", ErrBlockNotFound, req.BlockID)
	}

	intent, moved, err := drag.Replay(drag.NewLayout(s), req.BlockID, s.Blocks[from].Kind, from, req.Track, req.Cancelled)
	if err != nil {
		return drag.MoveIntent{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return intent, moved, nil
}

// InsertBlock вставляет слот или технический перерыв на позицию Index
// Второй обязательный перерыв не допускается. Если день перестает помещаться
// в рабочее время, возвращается ErrDayOverflow, пока не задан AllowOverflow.
func (uc *UseCase) InsertBlock(ctx context.Context, date time.Time, req InsertBlockRequest) (*models.DayView, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	kind, err := domain.ParseBlockKind(req.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if kind == domain.KindMandatoryBreak {
		return nil, fmt.Errorf("%w: day already has a mandatory break", ErrInvalidInput)
	}

	return uc.mutate(ctx, "InsertBlock", date, func(s domain.Schedule) (domain.Schedule, error) {
		if err := validateIndex("index", req.Index, len(s.Blocks)); err != nil {
			return s, err
		}

		next := scheduling.InsertBlock(s, req.Index, kind, "")
		if result := scheduling.Validate(next); !result.Valid && !req.AllowOverflow {
			return s, fmt.Errorf("%w: %d of %d minutes", ErrDayOverflow, result.TotalMinutes, result.MaxMinutes)
		}
		return next, nil
	})
}

// RemoveBlock удаляет блок; запись на удаляемый слот удаляется вместе с ним
// Обязательный перерыв удалить нельзя, только перенести
func (uc *UseCase) RemoveBlock(ctx context.Context, date time.Time, blockID string) (*models.DayView, error) {
	return uc.mutate(ctx, "RemoveBlock", date, func(s domain.Schedule) (domain.Schedule, error) {
		index, err := scheduling.IndexOf(s, blockID)
		if err != nil {
			return s, fmt.Errorf("%w: %s", ErrBlockNotFound, blockID)
		}
		if s.Blocks[index].Kind == domain.KindMandatoryBreak {
			return s, fmt.Errorf("%w: mandatory break cannot be removed", ErrInvalidInput)
		}
		return scheduling.RemoveBlockAt(s, index), nil
	})
}

// MoveMandatoryBreak переносит обязательный перерыв на ToIndex
func (uc *UseCase) MoveMandatoryBreak(ctx context.Context, date time.Time, req MoveBreakRequest) (*models.DayView, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	return uc.mutate(ctx, "MoveMandatoryBreak", date, func(s domain.Schedule) (domain.Schedule, error) {
		if err := validateIndex("toIndex", req.ToIndex, len(s.Blocks)-1); err != nil {
			return s, err
		}
		return scheduling.MoveMandatoryBreak(s, req.ToIndex), nil
	})
}

// MoveOptionalBreak переносит технический перерыв breakID на ToIndex
func (uc *UseCase) MoveOptionalBreak(ctx context.Context, date time.Time, breakID string, req MoveBreakRequest) (*models.DayView, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	return uc.mutate(ctx, "MoveOptionalBreak", date, func(s domain.Schedule) (domain.Schedule, error) {
		index, err := scheduling.IndexOf(s, breakID)
		if err != nil {
			return s, fmt.Errorf("%w: %s", ErrBlockNotFound, breakID)
		}
		if s.Blocks[index].Kind != domain.KindOptionalBreak {
			return s, fmt.Errorf("%w: block %s is %s", ErrNotOptionalBreak, breakID, s.Blocks[index].Kind)
		}
		if err := validateIndex("toIndex", req.ToIndex, len(s.Blocks)-1); err != nil {
			return s, err
		}
		return scheduling.MoveOptionalBreak(s, breakID, req.ToIndex), nil
	})
}

// BookAppointment создает запись на слот или обновляет существующую
// При обновлении со сменой статуса проверяется допустимость перехода
func (uc *UseCase) BookAppointment(ctx context.Context, date time.Time, slotID string, req BookAppointmentRequest) (*models.DayView, error) {
	normalizeBooking(&req)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	details := domain.AppointmentDetails{
		Name:    req.Name,
		Contact: req.Contact,
		Notes:   req.Notes,
	}
	if req.Status != nil {
		status, err := domain.ParseAppointmentStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		details.Status = &status
	}

	created := false
	view, err := uc.mutate(ctx, "BookAppointment", date, func(s domain.Schedule) (domain.Schedule, error) {
		if _, err := findSlot(s, slotID); err != nil {
			return s, err
		}

		existing, booked := scheduling.GetAppointment(s, slotID)
		if booked && details.Status != nil && !existing.Status.CanTransitionTo(*details.Status) {
			return s, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, existing.Status, *details.Status)
		}

		created = !booked
		return scheduling.BookAppointment(s, slotID, details, uc.timeProvider.Now()), nil
	})
	if err != nil {
		return nil, err
	}

	if created {
		uc.metrics.RecordBooking()
	}
	return view, nil
}

// SetAppointmentStatus меняет статус записи; переходы только вперед
func (uc *UseCase) SetAppointmentStatus(ctx context.Context, date time.Time, slotID string, req SetStatusRequest) (*models.DayView, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	status, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return uc.mutate(ctx, "SetAppointmentStatus", date, func(s domain.Schedule) (domain.Schedule, error) {
		if _, err := findSlot(s, slotID); err != nil {
			return s, err
		}
		existing, ok := scheduling.GetAppointment(s, slotID)
		if !ok {
			return s, fmt.Errorf("%w: slot %s", ErrAppointmentNotFound, slotID)
		}
		if !existing.Status.CanTransitionTo(status) {
			return s, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, existing.Status, status)
		}
		return scheduling.SetAppointmentStatus(s, slotID, status), nil
	})
}

// ClearAppointment освобождает слот
func (uc *UseCase) ClearAppointment(ctx context.Context, date time.Time, slotID string) (*models.DayView, error) {
	return uc.mutate(ctx, "ClearAppointment", date, func(s domain.Schedule) (domain.Schedule, error) {
		if _, err := findSlot(s, slotID); err != nil {
			return s, err
		}
		if _, ok := scheduling.GetAppointment(s, slotID); !ok {
			return s, fmt.Errorf("%w: slot %s", ErrAppointmentNotFound, slotID)
		}
		return scheduling.ClearAppointment(s, slotID), nil
	})
}

// mutate выполняет изменение дня под блокировкой даты и в сериализуемой транзакции
func (uc *UseCase) mutate(ctx context.Context, op string, date time.Time, fn mutation) (view *models.DayView, err error) {
	day := date.Format(domain.DateFormat)
	uc.logger.Info("%s: date=%s", op, day)

	defer func() {
		uc.metrics.RecordMutation(op, err)
	}()

	key := lock.DayKey(date)
	acquired, token, err := uc.locker.TryLock(ctx, key, uc.lockTTL)
	if err != nil {
		uc.logger.Error("%s: failed to lock date=%s: %v", op, day, err)
		return nil, fmt.Errorf("%w: failed to lock date: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Warn("%s: date=%s is locked by another request", op, day)
		return nil, ErrDateBusy
	}
	defer func() {
		// снимаем и при отмененном контексте запроса
		if unlockErr := uc.locker.Unlock(context.WithoutCancel(ctx), key, token); unlockErr != nil {
			uc.logger.Error("%s: failed to unlock date=%s: %v", op, day, unlockErr)
		}
	}()

	var (
		out       scheduling.ReflowOutput
		unchanged bool
	)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.load(txCtx, date)
		if err != nil {
			return err
		}

		repaired := scheduling.Repair(*current)
		next, err := fn(repaired)
		if errors.Is(err, errUnchanged) {
			unchanged = true
			out = scheduling.Reflow(repaired)
			return nil
		}
		if err != nil {
			return err
		}

		out = scheduling.Reflow(next)
		summary := scheduleRepo.Summary{
			DayFull:     out.DayFull(),
			OpenSlots:   len(out.OpenSlots),
			BookedSlots: len(out.BookedAppointments),
		}
		if err := uc.scheduleRepo.Save(txCtx, date, out.Schedule, summary); err != nil {
			uc.logger.Error("%s: failed to save date=%s: %v", op, day, err)
			return fmt.Errorf("%w: failed to save schedule: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			uc.logger.Warn("%s: date=%s rejected: %v", op, day, err)
			return nil, err
		}
		uc.logger.Error("%s: date=%s failed: %v", op, day, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if unchanged {
		uc.logger.Info("%s: date=%s unchanged, nothing saved", op, day)
		return models.FromReflow(date, out), nil
	}

	uc.metrics.RecordOverflow(len(out.Overflow))
	if needs := out.NeedsReschedule(); len(needs) > 0 {
		uc.logger.Warn("%s: date=%s has %d booked appointments beyond day end", op, day, len(needs))
	}

	uc.logger.Info("%s: date=%s saved, open=%d booked=%d dayFull=%t",
		op, day, len(out.OpenSlots), len(out.BookedAppointments), out.DayFull())
	return models.FromReflow(date, out), nil
}

func (uc *UseCase) load(ctx context.Context, date time.Time) (*domain.Schedule, error) {
	schedule, err := uc.scheduleRepo.Get(ctx, date)
	if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		fresh := scheduling.CreateDefaultSchedule(uc.breakPosition)
		return &fresh, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}
	return schedule, nil
}

func isDomainError(err error) bool {
	for _, target := range []error{
		ErrInvalidInput,
		ErrBlockNotFound,
		ErrSlotNotFound,
		ErrNotASlot,
		ErrNotOptionalBreak,
		ErrAppointmentNotFound,
		ErrInvalidStatusTransition,
		ErrDayOverflow,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

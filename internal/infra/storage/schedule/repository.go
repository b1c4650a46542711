package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
	"github.com/m04kA/SMC-DayBoard/pkg/dbmetrics"
	"github.com/m04kA/SMC-DayBoard/pkg/psqlbuilder"
)

const tableName = "day_schedules"

// Repository репозиторий расписаний дней; одна строка на календарную дату
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get загружает расписание дня
// Внутри транзакции строка блокируется (FOR UPDATE) до ее завершения.
// Возвращает ErrScheduleNotFound, если день еще не сохранялся.
func (r *Repository) Get(ctx context.Context, date time.Time) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildGetQuery(date, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan schedule: %v", ErrScanRow, err)
	}

	schedule, err := decodeSchedule(payload)
	if err != nil {
		return nil, fmt.Errorf("Get - date %s: %w", date.Format(domain.DateFormat), err)
	}
	return schedule, nil
}

// Save сохраняет расписание и производные данные дня (upsert по дате)
func (r *Repository) Save(ctx context.Context, date time.Time, schedule domain.Schedule, summary Summary) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := encodeSchedule(schedule)
	if err != nil {
		return fmt.Errorf("Save - date %s: %w", date.Format(domain.DateFormat), err)
	}

	query, args, err := buildSaveQuery(date, payload, summary)
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// ListSummaries возвращает сохраненные дни в диапазоне [from, to] по возрастанию даты
// Дни без строки в таблице не возвращаются
func (r *Repository) ListSummaries(ctx context.Context, from, to time.Time) ([]DaySummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSummaries - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSummaries - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	summaries := make([]DaySummary, 0)
	for rows.Next() {
		var s DaySummary
		var updatedAt sql.NullTime

		if err := rows.Scan(&s.Date, &s.DayFull, &s.OpenSlots, &s.BookedSlots, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListSummaries - scan row: %v", ErrScanRow, err)
		}
		s.UpdatedAt = updatedAt.Time
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSummaries - rows iteration: %v", ErrScanRow, err)
	}

	return summaries, nil
}

func buildGetQuery(date time.Time, forUpdate bool) (string, []interface{}, error) {
	q := psqlbuilder.Select("payload").
		From(tableName).
		Where(squirrel.Eq{"schedule_date": date.Format(domain.DateFormat)})

	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	return q.ToSql()
}

func buildSaveQuery(date time.Time, payload []byte, summary Summary) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns(
			"schedule_date",
			"payload",
			"day_full",
			"open_slots",
			"booked_slots",
		).
		Values(
			date.Format(domain.DateFormat),
			payload,
			summary.DayFull,
			summary.OpenSlots,
			summary.BookedSlots,
		).
		Suffix(`ON CONFLICT (schedule_date) DO UPDATE SET
			payload = EXCLUDED.payload,
			day_full = EXCLUDED.day_full,
			open_slots = EXCLUDED.open_slots,
			booked_slots = EXCLUDED.booked_slots,
			updated_at = NOW()`).
		ToSql()
}

func buildListQuery(from, to time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"schedule_date",
		"day_full",
		"open_slots",
		"booked_slots",
		"updated_at",
	).
		From(tableName).
		Where(squirrel.GtOrEq{"schedule_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"schedule_date": to.Format(domain.DateFormat)}).
		OrderBy("schedule_date ASC").
		ToSql()
}

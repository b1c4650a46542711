package edit_day

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-DayBoard/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-DayBoard/internal/scheduling"
	"github.com/m04kA/SMC-DayBoard/pkg/logger"
	"github.com/m04kA/SMC-DayBoard/pkg/ptr"
)

var (
	day     = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	fixedAt = time.Date(2025, 10, 14, 17, 30, 0, 0, time.UTC)
)

type fakeRepo struct {
	schedules map[string]domain.Schedule
	summaries map[string]scheduleRepo.Summary
	saves     int
	getErr    error
	saveErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		schedules: make(map[string]domain.Schedule),
		summaries: make(map[string]scheduleRepo.Summary),
	}
}

func (f *fakeRepo) Get(_ context.Context, date time.Time) (*domain.Schedule, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	s, ok := f.schedules[date.Format(domain.DateFormat)]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	clone := s.Clone()
	return &clone, nil
}

func (f *fakeRepo) Save(_ context.Context, date time.Time, s domain.Schedule, summary scheduleRepo.Summary) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.schedules[date.Format(domain.DateFormat)] = s.Clone()
	f.summaries[date.Format(domain.DateFormat)] = summary
	return nil
}

func (f *fakeRepo) stored(t *testing.T) domain.Schedule {
	t.Helper()
	s, ok := f.schedules[day.Format(domain.DateFormat)]
	require.True(t, ok, "schedule was not saved")
	return s
}

type fakeLocker struct {
	busy     bool
	err      error
	locked   []string
	unlocked []string
}

func (f *fakeLocker) TryLock(_ context.Context, key string, _ time.Duration) (bool, string, error) {
	if f.err != nil {
		return false, "", f.err
	}
	if f.busy {
		return false, "", nil
	}
	f.locked = append(f.locked, key)
	return true, "token", nil
}

func (f *fakeLocker) Unlock(_ context.Context, key, token string) error {
	f.unlocked = append(f.unlocked, key+":"+token)
	return nil
}

type fakeTx struct {
	calls int
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeMetrics struct {
	mutations map[string]int
	bookings  int
	overflows []int
}

func (f *fakeMetrics) RecordMutation(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	f.mutations[op+":"+result]++
}

func (f *fakeMetrics) RecordBooking() { f.bookings++ }
func (f *fakeMetrics) RecordOverflow(n int) { f.overflows = append(f.overflows, n) }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fixture struct {
	uc      *UseCase
	repo    *fakeRepo
	locker  *fakeLocker
	tx      *fakeTx
	metrics *fakeMetrics
}

func newFixture() *fixture {
	f := &fixture{
		repo:    newFakeRepo(),
		locker:  &fakeLocker{},
		tx:      &fakeTx{},
		metrics: &fakeMetrics{mutations: make(map[string]int)},
	}
	f.uc = NewUseCase(f.repo, f.locker, f.tx, f.metrics, domain.DefaultMandatoryBreakPosition, 10*time.Second, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: fixedAt}
	return f
}

func (f *fixture) seed(s domain.Schedule) {
	f.repo.schedules[day.Format(domain.DateFormat)] = s
}

func TestMoveBlock_SavesAndLocks(t *testing.T) {
	f := newFixture()

	view, err := f.uc.MoveBlock(context.Background(), day, MoveBlockRequest{FromIndex: 4, ToIndex: 0})
	require.NoError(t, err)

	assert.Equal(t, "mandatory_break", view.Items[0].Kind)
	assert.Equal(t, "09:00", view.Items[0].Start)
	assert.Equal(t, 1, f.repo.saves)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, []string{"dayboard:lock:2025-10-15"}, f.locker.locked)
	assert.Equal(t, []string{"dayboard:lock:2025-10-15:token"}, f.locker.unlocked)
	assert.Equal(t, 1, f.metrics.mutations["MoveBlock:ok"])

	stored := f.repo.stored(t)
	assert.Equal(t, domain.KindMandatoryBreak, stored.Blocks[0].Kind)
	assert.Equal(t, scheduleRepo.Summary{OpenSlots: 12}, f.repo.summaries["2025-10-15"])
}

func TestMoveBlock_OutOfRange(t *testing.T) {
	f := newFixture()

	_, err := f.uc.MoveBlock(context.Background(), day, MoveBlockRequest{FromIndex: 0, ToIndex: 13})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.MoveBlock(context.Background(), day, MoveBlockRequest{FromIndex: -1, ToIndex: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, f.repo.saves)
	assert.Equal(t, 1, f.metrics.mutations["MoveBlock:error"])
}

func TestMutation_DateBusy(t *testing.T) {
	f := newFixture()
	f.locker.busy = true

	_, err := f.uc.MoveBlock(context.Background(), day, MoveBlockRequest{FromIndex: 4, ToIndex: 0})

	assert.ErrorIs(t, err, ErrDateBusy)
	assert.Zero(t, f.tx.calls)
	assert.Empty(t, f.locker.unlocked)
}

func TestMutation_InfrastructureErrors(t *testing.T) {
	t.Run("lock", func(t *testing.T) {
		f := newFixture()
		f.locker.err = errors.New("redis down")
		_, err := f.uc.RemoveBlock(context.Background(), day, "x")
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("load", func(t *testing.T) {
		f := newFixture()
		f.repo.getErr = errors.New("db down")
		_, err := f.uc.MoveMandatoryBreak(context.Background(), day, MoveBreakRequest{ToIndex: 0})
		assert.ErrorIs(t, err, ErrInternal)
		assert.Len(t, f.locker.unlocked, 1)
	})

	t.Run("save", func(t *testing.T) {
		f := newFixture()
		f.repo.saveErr = errors.New("db down")
		_, err := f.uc.MoveMandatoryBreak(context.Background(), day, MoveBreakRequest{ToIndex: 0})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestDrag(t *testing.T) {
	f := newFixture()
	s := scheduling.CreateDefaultSchedule(4)
	f.seed(s)
	breakID := s.Blocks[4].ID

	view, err := f.uc.Drag(context.Background(), day, DragRequest{BlockID: breakID, Track: []int{200, 10}})
	require.NoError(t, err)
	assert.Equal(t, breakID, view.Items[0].BlockID)

	_, err = f.uc.Drag(context.Background(), day, DragRequest{BlockID: breakID, Track: []int{900}, Cancelled: true})
	require.NoError(t, err)
	assert.Equal(t, breakID, f.repo.stored(t).Blocks[0].ID, "cancelled gesture must not move")
	assert.Equal(t, 1, f.repo.saves)

	_, err = f.uc.Drag(context.Background(), day, DragRequest{BlockID: "missing", Track: []int{10}})
	assert.ErrorIs(t, err, ErrBlockNotFound)

	_, err = f.uc.Drag(context.Background(), day, DragRequest{Track: []int{10}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDrag_NoMoveSkipsWritePath(t *testing.T) {
	tests := []struct {
		name string
		req  func(breakID string) DragRequest
	}{
		{"cancelled", func(id string) DragRequest { return DragRequest{BlockID: id, Track: []int{900}, Cancelled: true} }},
		// перерыв на позиции 4 занимает 288..384 px
		{"released at origin", func(id string) DragRequest { return DragRequest{BlockID: id, Track: []int{10, 300}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			s := scheduling.CreateDefaultSchedule(4)
			f.seed(s)
			breakID := s.Blocks[4].ID

			view, err := f.uc.Drag(context.Background(), day, tt.req(breakID))
			require.NoError(t, err)

			assert.Equal(t, breakID, view.Items[4].BlockID)
			assert.Zero(t, f.repo.saves)
			assert.Zero(t, f.tx.calls)
			assert.Empty(t, f.locker.locked)
			assert.Empty(t, f.metrics.mutations)
			assert.Empty(t, f.metrics.overflows)
		})
	}
}

func TestDrag_CancelledOnUnsavedDayCreatesNoRow(t *testing.T) {
	restore := scheduling.NewBlockID
	t.Cleanup(func() { scheduling.NewBlockID = restore })
	next := 0
	scheduling.NewBlockID = func() string {
		next++
		return fmt.Sprintf("b%d", next)
	}

	f := newFixture()

	// день по умолчанию: b1..b4 слоты, b5 обязательный перерыв
	view, err := f.uc.Drag(context.Background(), day, DragRequest{BlockID: "b5", Track: []int{900}, Cancelled: true})
	require.NoError(t, err)
	assert.Equal(t, "b5", view.Items[4].BlockID)
	assert.Empty(t, f.repo.schedules)
	assert.Zero(t, f.repo.saves)
	assert.Empty(t, f.locker.locked)
}

func TestDrag_LoadError(t *testing.T) {
	f := newFixture()
	f.repo.getErr = errors.New("db down")

	_, err := f.uc.Drag(context.Background(), day, DragRequest{BlockID: "b", Track: []int{10}})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, f.repo.saves)
}

func TestInsertBlock(t *testing.T) {
	t.Run("optional break into full day overflows", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.InsertBlock(context.Background(), day, InsertBlockRequest{Index: 2, Kind: "optional_break"})
		assert.ErrorIs(t, err, ErrDayOverflow)
		assert.Zero(t, f.repo.saves)
	})

	t.Run("allowed overflow is reported", func(t *testing.T) {
		f := newFixture()
		view, err := f.uc.InsertBlock(context.Background(), day, InsertBlockRequest{Index: 2, Kind: "optional_break", AllowOverflow: true})
		require.NoError(t, err)
		assert.Equal(t, "optional_break", view.Items[2].Kind)
		assert.Equal(t, "10:30", view.Items[2].Start)
		require.Len(t, view.Overflow, 1)
		assert.Equal(t, []int{1}, f.metrics.overflows)
	})

	t.Run("slot after removal still overflows", func(t *testing.T) {
		f := newFixture()
		s := scheduling.CreateDefaultSchedule(4)
		s = scheduling.RemoveBlockAt(s, 0)
		f.seed(s)

		// Repair дополняет день слотом в конце, поэтому места нет и после удаления
		_, err := f.uc.InsertBlock(context.Background(), day, InsertBlockRequest{Index: 0, Kind: "slot"})
		assert.ErrorIs(t, err, ErrDayOverflow)
	})

	t.Run("second mandatory break", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.InsertBlock(context.Background(), day, InsertBlockRequest{Index: 0, Kind: "mandatory_break"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown kind and bad index", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.InsertBlock(context.Background(), day, InsertBlockRequest{Index: 0, Kind: "lunch"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = f.uc.InsertBlock(context.Background(), day, InsertBlockRequest{Index: 14, Kind: "slot", AllowOverflow: true})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestRemoveBlock(t *testing.T) {
	f := newFixture()
	s := scheduling.CreateDefaultSchedule(4)
	slotID := s.Blocks[0].ID
	s = scheduling.BookAppointment(s, slotID, domain.AppointmentDetails{Name: "a", Contact: "b"}, fixedAt)
	f.seed(s)

	view, err := f.uc.RemoveBlock(context.Background(), day, slotID)
	require.NoError(t, err)

	assert.Empty(t, view.BookedAppointments)
	assert.NotContains(t, f.repo.stored(t).Appointments, slotID)
	assert.Equal(t, "11:15", view.Items[3].Start, "break moves earlier after removal")

	_, err = f.uc.RemoveBlock(context.Background(), day, "missing")
	assert.ErrorIs(t, err, ErrBlockNotFound)

	breakIdx, _ := scheduling.FindMandatoryBreak(f.repo.stored(t))
	_, err = f.uc.RemoveBlock(context.Background(), day, f.repo.stored(t).Blocks[breakIdx].ID)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMoveMandatoryBreak(t *testing.T) {
	f := newFixture()

	view, err := f.uc.MoveMandatoryBreak(context.Background(), day, MoveBreakRequest{ToIndex: 12})
	require.NoError(t, err)
	assert.Equal(t, "mandatory_break", view.Items[12].Kind)
	assert.Equal(t, "18:00", view.Items[12].Start)

	_, err = f.uc.MoveMandatoryBreak(context.Background(), day, MoveBreakRequest{ToIndex: 13})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMoveOptionalBreak(t *testing.T) {
	f := newFixture()
	s := scheduling.CreateDefaultSchedule(4)
	s = scheduling.RemoveBlockAt(s, 12)
	s = scheduling.InsertBlock(s, 0, domain.KindOptionalBreak, "tech")
	f.seed(s)

	view, err := f.uc.MoveOptionalBreak(context.Background(), day, "tech", MoveBreakRequest{ToIndex: 5})
	require.NoError(t, err)
	assert.Equal(t, "tech", view.Items[5].BlockID)

	_, err = f.uc.MoveOptionalBreak(context.Background(), day, s.Blocks[1].ID, MoveBreakRequest{ToIndex: 0})
	assert.ErrorIs(t, err, ErrNotOptionalBreak)

	_, err = f.uc.MoveOptionalBreak(context.Background(), day, "missing", MoveBreakRequest{ToIndex: 0})
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestBookAppointment(t *testing.T) {
	f := newFixture()
	s := scheduling.CreateDefaultSchedule(4)
	f.seed(s)
	slotID := s.Blocks[0].ID

	view, err := f.uc.BookAppointment(context.Background(), day, slotID, BookAppointmentRequest{
		Name:    "  Anna ",
		Contact: "anna@example.com",
		Notes:   ptr.Ptr("   "),
	})
	require.NoError(t, err)

	require.Len(t, view.BookedAppointments, 1)
	a := view.BookedAppointments[0].Appointment
	require.NotNil(t, a)
	assert.Equal(t, "Anna", a.Name)
	assert.Equal(t, "email", a.ContactKind)
	assert.Nil(t, a.Notes)
	assert.Equal(t, fixedAt, a.CreatedAt)
	assert.Equal(t, 1, f.metrics.bookings)

	// обновление существующей записи не считается новой и сохраняет CreatedAt
	f.uc.timeProvider = fixedTime{now: fixedAt.Add(time.Hour)}
	view, err = f.uc.BookAppointment(context.Background(), day, slotID, BookAppointmentRequest{
		Name:    "Anna K.",
		Contact: "anna@example.com",
		Status:  ptr.Ptr("checked_in"),
	})
	require.NoError(t, err)
	assert.Equal(t, "checked_in", view.BookedAppointments[0].Appointment.Status)
	assert.Equal(t, fixedAt, view.BookedAppointments[0].Appointment.CreatedAt)
	assert.Equal(t, 1, f.metrics.bookings)

	_, err = f.uc.BookAppointment(context.Background(), day, slotID, BookAppointmentRequest{
		Name:    "Anna K.",
		Contact: "anna@example.com",
		Status:  ptr.Ptr("scheduled"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestBookAppointment_Rejections(t *testing.T) {
	f := newFixture()
	s := scheduling.CreateDefaultSchedule(4)
	f.seed(s)

	tests := []struct {
		name    string
		slotID  string
		req     BookAppointmentRequest
		wantErr error
	}{
		{name: "blank name", slotID: s.Blocks[0].ID, req: BookAppointmentRequest{Name: "  ", Contact: "x"}, wantErr: ErrInvalidInput},
		{name: "no contact", slotID: s.Blocks[0].ID, req: BookAppointmentRequest{Name: "a"}, wantErr: ErrInvalidInput},
		{name: "unknown status", slotID: s.Blocks[0].ID, req: BookAppointmentRequest{Name: "a", Contact: "b", Status: ptr.Ptr("lost")}, wantErr: ErrInvalidInput},
		{name: "break", slotID: s.Blocks[4].ID, req: BookAppointmentRequest{Name: "a", Contact: "b"}, wantErr: ErrNotASlot},
		{name: "unknown slot", slotID: "missing", req: BookAppointmentRequest{Name: "a", Contact: "b"}, wantErr: ErrSlotNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.BookAppointment(context.Background(), day, tt.slotID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Zero(t, f.repo.saves)
}

func TestSetAppointmentStatus(t *testing.T) {
	f := newFixture()
	s := scheduling.CreateDefaultSchedule(4)
	slotID := s.Blocks[0].ID
	s = scheduling.BookAppointment(s, slotID, domain.AppointmentDetails{Name: "a", Contact: "b"}, fixedAt)
	f.seed(s)

	view, err := f.uc.SetAppointmentStatus(context.Background(), day, slotID, SetStatusRequest{Status: "checked_in"})
	require.NoError(t, err)
	assert.Equal(t, "checked_in", view.BookedAppointments[0].Appointment.Status)

	_, err = f.uc.SetAppointmentStatus(context.Background(), day, slotID, SetStatusRequest{Status: "completed"})
	require.NoError(t, err)

	_, err = f.uc.SetAppointmentStatus(context.Background(), day, slotID, SetStatusRequest{Status: "no_show"})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	_, err = f.uc.SetAppointmentStatus(context.Background(), day, s.Blocks[1].ID, SetStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = f.uc.SetAppointmentStatus(context.Background(), day, slotID, SetStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClearAppointment(t *testing.T) {
	f := newFixture()
	s := scheduling.CreateDefaultSchedule(4)
	slotID := s.Blocks[0].ID
	s = scheduling.BookAppointment(s, slotID, domain.AppointmentDetails{Name: "a", Contact: "b"}, fixedAt)
	f.seed(s)

	view, err := f.uc.ClearAppointment(context.Background(), day, slotID)
	require.NoError(t, err)
	assert.Len(t, view.OpenSlots, 12)
	assert.Empty(t, f.repo.stored(t).Appointments)

	_, err = f.uc.ClearAppointment(context.Background(), day, slotID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = f.uc.ClearAppointment(context.Background(), day, s.Blocks[4].ID)
	assert.ErrorIs(t, err, ErrNotASlot)
}

func TestBookingAllSlots_DayFullSummary(t *testing.T) {
	f := newFixture()
	s := scheduling.CreateDefaultSchedule(4)
	f.seed(s)

	var lastFull bool
	for _, b := range s.Blocks {
		if !b.IsSlot() {
			continue
		}
		view, err := f.uc.BookAppointment(context.Background(), day, b.ID, BookAppointmentRequest{Name: "n", Contact: "c"})
		require.NoError(t, err)
		lastFull = view.DayFull
	}

	assert.True(t, lastFull)
	assert.Equal(t, scheduleRepo.Summary{DayFull: true, BookedSlots: 12}, f.repo.summaries["2025-10-15"])
	assert.Equal(t, 12, f.metrics.bookings)
}

func TestNewUseCase_NilMetrics(t *testing.T) {
	uc := NewUseCase(newFakeRepo(), &fakeLocker{}, &fakeTx{}, nil, 4, time.Second, logger.NewNop())

	_, err := uc.MoveMandatoryBreak(context.Background(), day, MoveBreakRequest{ToIndex: 0})
	assert.NoError(t, err)
}

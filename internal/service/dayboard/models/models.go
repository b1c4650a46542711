package models

import (
	"time"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
	"github.com/m04kA/SMC-DayBoard/internal/drag"
	"github.com/m04kA/SMC-DayBoard/internal/scheduling"
)

// Response модели

// DayView расписание дня с вычисленным временем и разметкой таймлайна
type DayView struct {
	Date               string         `json:"date"`
	DayStart           string         `json:"dayStart"`
	DayEnd             string         `json:"dayEnd"`
	DayFull            bool           `json:"dayFull"`
	TotalHeightPx      int            `json:"totalHeightPx"`
	Items              []ItemView     `json:"items"`
	OpenSlots          []ItemView     `json:"openSlots"`
	BookedAppointments []ItemView     `json:"bookedAppointments"`
	Overflow           []OverflowView `json:"overflow"`
}

// ItemView блок с абсолютным временем
type ItemView struct {
	Index           int              `json:"index"`
	BlockID         string           `json:"blockId"`
	Kind            string           `json:"kind"`
	Start           string           `json:"start"`
	End             string           `json:"end"`
	DurationMinutes int              `json:"durationMinutes"`
	HeightPx        int              `json:"heightPx"`
	OffsetPx        int              `json:"offsetPx"`
	Appointment     *AppointmentView `json:"appointment,omitempty"`
}

// AppointmentView запись на слот
type AppointmentView struct {
	Name        string    `json:"name"`
	Contact     string    `json:"contact"`
	ContactKind string    `json:"contactKind"`
	Notes       *string   `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OverflowView блок, не поместившийся в рабочий день
type OverflowView struct {
	Index           int              `json:"index"`
	BlockID         string           `json:"blockId"`
	Kind            string           `json:"kind"`
	NeedsReschedule bool             `json:"needsReschedule"`
	Appointment     *AppointmentView `json:"appointment,omitempty"`
}

// ValidationView результат проверки длительности дня
type ValidationView struct {
	Date         string `json:"date"`
	Valid        bool   `json:"valid"`
	TotalMinutes int    `json:"totalMinutes"`
	MaxMinutes   int    `json:"maxMinutes"`
}

// CalendarDay заполненность одного дня
type CalendarDay struct {
	Date        string `json:"date"`
	DayFull     bool   `json:"dayFull"`
	OpenSlots   int    `json:"openSlots"`
	BookedSlots int    `json:"bookedSlots"`
	Saved       bool   `json:"saved"`
}

// CalendarView заполненность дней в диапазоне
type CalendarView struct {
	From string        `json:"from"`
	To   string        `json:"to"`
	Days []CalendarDay `json:"days"`
}

// Конвертеры

// FromReflow строит представление дня из результата Reflow
func FromReflow(date time.Time, out scheduling.ReflowOutput) *DayView {
	layout := drag.NewLayout(out.Schedule)

	view := &DayView{
		Date:               date.Format(domain.DateFormat),
		DayStart:           domain.DayStart,
		DayEnd:             domain.DayEnd,
		DayFull:            out.DayFull(),
		TotalHeightPx:      layout.TotalHeight(),
		Items:              make([]ItemView, 0, len(out.Items)),
		OpenSlots:          make([]ItemView, 0, len(out.OpenSlots)),
		BookedAppointments: make([]ItemView, 0, len(out.BookedAppointments)),
		Overflow:           make([]OverflowView, 0, len(out.Overflow)),
	}

	for _, item := range out.Items {
		view.Items = append(view.Items, toItemView(item, layout))
	}
	for _, item := range out.OpenSlots {
		view.OpenSlots = append(view.OpenSlots, toItemView(item, layout))
	}
	for _, item := range out.BookedAppointments {
		view.BookedAppointments = append(view.BookedAppointments, toItemView(item, layout))
	}
	for _, item := range out.Overflow {
		view.Overflow = append(view.Overflow, OverflowView{
			Index:           item.Index,
			BlockID:         item.BlockID,
			Kind:            item.Kind.String(),
			NeedsReschedule: item.NeedsReschedule(),
			Appointment:     toAppointmentView(item.Appointment),
		})
	}

	return view
}

func toItemView(item scheduling.ScheduleItem, layout drag.Layout) ItemView {
	return ItemView{
		Index:           item.Index,
		BlockID:         item.BlockID,
		Kind:            item.Kind.String(),
		Start:           item.Start,
		End:             item.End,
		DurationMinutes: item.EndMinutes - item.StartMinutes,
		HeightPx:        layout.Height(item.Index),
		OffsetPx:        layout.Offset(item.Index),
		Appointment:     toAppointmentView(item.Appointment),
	}
}

func toAppointmentView(a *domain.Appointment) *AppointmentView {
	if a == nil {
		return nil
	}
	return &AppointmentView{
		Name:        a.Name,
		Contact:     a.Contact,
		ContactKind: string(a.ContactKind()),
		Notes:       a.Notes,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

// FromValidation конвертирует результат Validate
func FromValidation(date time.Time, r scheduling.ValidationResult) *ValidationView {
	return &ValidationView{
		Date:         date.Format(domain.DateFormat),
		Valid:        r.Valid,
		TotalMinutes: r.TotalMinutes,
		MaxMinutes:   r.MaxMinutes,
	}
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCheckedIn AppointmentStatus = "checked_in"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ContactKind tells whether a contact is an email or a phone
type ContactKind string

const (
	ContactEmail ContactKind = "email"
	ContactPhone ContactKind = "phone"
)

// Appointment is the booking payload attached to a slot block
type Appointment struct {
	Name      string
	Contact   string
	Notes     *string
	Status    AppointmentStatus
	CreatedAt time.Time
	IsBooked  bool
}

// AppointmentDetails is the input of a booking
type AppointmentDetails struct {
	Name    string
	Contact string
	Notes   *string
	Status  *AppointmentStatus
}

// ContactKind returns email when the contact contains '@', phone otherwise
func (a *Appointment) ContactKind() ContactKind {
	if strings.Contains(a.Contact, "@") {
		return ContactEmail
	}
	return ContactPhone
}

// IsActive returns true while the client is still expected or being served
func (a *Appointment) IsActive() bool {
	return a.Status == StatusScheduled || a.Status == StatusCheckedIn
}

// IsFinal returns true if no further transitions are possible except cancellation
func (a *Appointment) IsFinal() bool {
	return a.Status == StatusCompleted || a.Status == StatusNoShow || a.Status == StatusCancelled
}

// IsValid returns true for the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCheckedIn, StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo implements forward-only progress:
// scheduled -> checked_in -> completed, scheduled/checked_in -> no_show, any -> cancelled.
// Staying in the same status is allowed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next || next == StatusCancelled {
		return true
	}

	switch s {
	case StatusScheduled:
		return next == StatusCheckedIn || next == StatusNoShow
	case StatusCheckedIn:
		return next == StatusCompleted || next == StatusNoShow
	default:
		return false
	}
}

// ParseAppointmentStatus validates a status string
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("domain: unknown appointment status %q", s)
	}
	return status, nil
}

// AllStatuses lists statuses in their natural order
var AllStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCheckedIn,
	StatusCompleted,
	StatusNoShow,
	StatusCancelled,
}

package domain

// Day bounds and block durations of the service counter
const (
	DayStart = "09:00"
	DayEnd   = "19:00"

	SlotDuration           = 45
	MandatoryBreakDuration = 60
	OptionalBreakDuration  = 15
	SnapIncrement          = 15

	// DefaultMandatoryBreakPosition is the block index of the break in a fresh day (12:00)
	DefaultMandatoryBreakPosition = 4
)

// Timeline scale: 15 minutes map to 24 pixels
const (
	PixelsPerSnap  = 24
	MinutesPerHour = 60
)

// Business validation constants
const (
	MaxNameLength    = 200
	MaxContactLength = 200
	MaxNotesLength   = 500
	MaxCalendarDays  = 62
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned for a clock string that is not a valid "HH:MM"
var ErrInvalidFormat = errors.New("domain: invalid clock format, expected HH:MM")

// TimeToMinutes converts "HH:MM" into minutes since midnight
func TimeToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, clock)
	}
	// часы - одна или две цифры, минуты - ровно две; знаки не допускаются
	if !isDigits(parts[0], 1, 2) || !isDigits(parts[1], 2, 2) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: bad hours in %q", ErrInvalidFormat, clock)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: bad minutes in %q", ErrInvalidFormat, clock)
	}

	return hours*MinutesPerHour + minutes, nil
}

func isDigits(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MinutesToTime formats minutes since midnight as zero-padded "HH:MM".
// No wrapping is done; minutes outside [0, 1439] are a caller error.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/MinutesPerHour, minutes%MinutesPerHour)
}

// DurationToPixels maps a duration onto the timeline scale (1.6 px per minute), rounded
func DurationToPixels(minutes int) int {
	return int(math.Round(float64(minutes) * PixelsPerSnap / SnapIncrement))
}

// mustMinutes is used for the package constants, which are known to be valid
func mustMinutes(clock string) int {
	m, err := TimeToMinutes(clock)
	if err != nil {
		panic(err)
	}
	return m
}

var (
	dayStartMinutes = mustMinutes(DayStart)
	dayEndMinutes   = mustMinutes(DayEnd)
)

// DayStartMinutes returns DayStart in minutes since midnight
func DayStartMinutes() int {
	return dayStartMinutes
}

// DayEndMinutes returns DayEnd in minutes since midnight
func DayEndMinutes() int {
	return dayEndMinutes
}

// DaySpanMinutes is the length of the working day
func DaySpanMinutes() int {
	return dayEndMinutes - dayStartMinutes
}

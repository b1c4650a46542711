package edit_day

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
	"github.com/m04kA/SMC-DayBoard/pkg/ptr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest проверяет теги validate и возвращает ErrInvalidInput с перечнем полей
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fields := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, ", "))
}

// normalizeBooking обрезает пробелы; вызывается до validateRequest
func normalizeBooking(req *BookAppointmentRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Contact = strings.TrimSpace(req.Contact)
	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if notes == "" {
			req.Notes = nil
		} else {
			req.Notes = ptr.Ptr(notes)
		}
	}
}

// validateIndex проверяет, что index в [0, upper]
func validateIndex(name string, index, upper int) error {
	if index < 0 || index > upper {
		return fmt.Errorf("%w: %s %d out of range [0, %d]", ErrInvalidInput, name, index, upper)
	}
	return nil
}

// findSlot возвращает позицию слота или ErrSlotNotFound / ErrNotASlot
func findSlot(schedule domain.Schedule, blockID string) (int, error) {
	for i, b := range schedule.Blocks {
		if b.ID != blockID {
			continue
		}
		if !b.IsSlot() {
			return i, fmt.Errorf("%w: block %s is %s", ErrNotASlot, blockID, b.Kind)
		}
		return i, nil
	}
	return -1, fmt.Errorf("%w: %s", ErrSlotNotFound, blockID)
}

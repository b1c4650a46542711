package schedule

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
)

// payloadVersion версия формата JSONB колонки payload
const payloadVersion = 1

// Summary производные данные дня, хранящиеся рядом с payload для календаря
type Summary struct {
	DayFull     bool
	OpenSlots   int
	BookedSlots int
}

// DaySummary строка календаря
type DaySummary struct {
	Date        time.Time
	DayFull     bool
	OpenSlots   int
	BookedSlots int
	UpdatedAt   time.Time
}

type payloadDTO struct {
	Version      int                       `json:"version"`
	Blocks       []blockDTO                `json:"blocks"`
	Appointments map[string]appointmentDTO `json:"appointments"`
}

type blockDTO struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}

type appointmentDTO struct {
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Notes     *string   `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	IsBooked  bool      `json:"isBooked"`
}

func encodeSchedule(s domain.Schedule) ([]byte, error) {
	dto := payloadDTO{
		Version:      payloadVersion,
		Blocks:       make([]blockDTO, 0, len(s.Blocks)),
		Appointments: make(map[string]appointmentDTO, len(s.Appointments)),
	}

	for _, b := range s.Blocks {
		if !b.Kind.IsValid() {
			return nil, fmt.Errorf("%w: block %s has unknown kind %d", ErrEncodePayload, b.ID, int(b.Kind))
		}
		dto.Blocks = append(dto.Blocks, blockDTO{ID: b.ID, Kind: b.Kind.String()})
	}

	for id, a := range s.Appointments {
		dto.Appointments[id] = appointmentDTO{
			Name:      a.Name,
			Contact:   a.Contact,
			Notes:     a.Notes,
			Status:    string(a.Status),
			CreatedAt: a.CreatedAt.UTC(),
			IsBooked:  a.IsBooked,
		}
	}

	data, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodePayload, err)
	}
	return data, nil
}

func decodeSchedule(data []byte) (*domain.Schedule, error) {
	var dto payloadDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodePayload, err)
	}
	if dto.Version != payloadVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrDecodePayload, dto.Version)
	}

	s := &domain.Schedule{
		Blocks:       make([]domain.Block, 0, len(dto.Blocks)),
		Appointments: make(map[string]domain.Appointment, len(dto.Appointments)),
	}

	for _, b := range dto.Blocks {
		kind, err := domain.ParseBlockKind(b.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecodePayload, err)
		}
		s.Blocks = append(s.Blocks, domain.Block{ID: b.ID, Kind: kind})
	}

	for id, a := range dto.Appointments {
		status, err := domain.ParseAppointmentStatus(a.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: appointment %s: %v", ErrDecodePayload, id, err)
		}
		s.Appointments[id] = domain.Appointment{
			Name:      a.Name,
			Contact:   a.Contact,
			Notes:     a.Notes,
			Status:    status,
			CreatedAt: a.CreatedAt,
			IsBooked:  a.IsBooked,
		}
	}

	return s, nil
}

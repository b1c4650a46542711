package domain

// Schedule is the state of one calendar day.
// Block order is chronological order; appointments are keyed by slot block id.
type Schedule struct {
	Blocks       []Block
	Appointments map[string]Appointment
}

// Clone returns a deep copy, so that mutations never alias their input
func (s Schedule) Clone() Schedule {
	blocks := make([]Block, len(s.Blocks))
	copy(blocks, s.Blocks)

	appointments := make(map[string]Appointment, len(s.Appointments))
	for id, a := range s.Appointments {
		if a.Notes != nil {
			notes := *a.Notes
			a.Notes = &notes
		}
		appointments[id] = a
	}

	return Schedule{Blocks: blocks, Appointments: appointments}
}

// TotalMinutes sums block durations
func (s Schedule) TotalMinutes() int {
	total := 0
	for _, b := range s.Blocks {
		total += b.Duration()
	}
	return total
}

// CountKind returns how many blocks of the kind the schedule has
func (s Schedule) CountKind(kind BlockKind) int {
	count := 0
	for _, b := range s.Blocks {
		if b.Kind == kind {
			count++
		}
	}
	return count
}

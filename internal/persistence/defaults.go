package persistence

import (
	"time"

	"github.com/daphos/shift-service/internal/domain"
)

// DefaultDataset is the roster used when no persisted state is available:
// ten hospital staff and their shifts for the week of 10 November 2025.
func DefaultDataset() domain.Dataset {
	return domain.Dataset{
		Employees: []domain.Employee{
			{ID: "1", Name: "Anna Müller", Role: "Pflegeleitung", IsActive: true},
			{ID: "2", Name: "Ben Kochs", Role: "Krankenpfleger", IsActive: true},
			{ID: "3", Name: "Carla Reimann", Role: "Stationsärztin", IsActive: false},
			{ID: "4", Name: "David Schmidt", Role: "OP-Pfleger", IsActive: true},
			{ID: "5", Name: "Emma Weber", Role: "Intensivpflegerin", IsActive: true},
			{ID: "6", Name: "Felix Klein", Role: "Anästhesist", IsActive: false},
			{ID: "7", Name: "Greta Hoffmann", Role: "Notaufnahme", IsActive: true},
			{ID: "8", Name: "Hans Becker", Role: "Facharzt Chirurgie", IsActive: true},
			{ID: "9", Name: "Iris Neumann", Role: "Physiotherapeutin", IsActive: true},
			{ID: "10", Name: "Jonas Fischer", Role: "Radiologieassistent", IsActive: false},
		},
		Shifts: []domain.Shift{
			defaultShift("s1", "1", "2025-11-10T06:00:00", "2025-11-10T14:00:00", "Frühdienst"),
			defaultShift("s2", "1", "2025-11-11T06:00:00", "2025-11-11T14:00:00", "Frühdienst"),
			defaultShift("s3", "1", "2025-11-12T06:00:00", "2025-11-12T14:00:00", "Frühdienst"),
			defaultShift("s4", "1", "2025-11-13T06:00:00", "2025-11-13T14:00:00", "Frühdienst"),
			defaultShift("s5", "1", "2025-11-14T06:00:00", "2025-11-14T14:00:00", "Frühdienst"),
			defaultShift("s6", "2", "2025-11-10T06:00:00", "2025-11-10T14:00:00", "Frühdienst"),
			defaultShift("s7", "2", "2025-11-11T14:00:00", "2025-11-11T22:00:00", "Spätdienst"),
			defaultShift("s8", "2", "2025-11-12T06:00:00", "2025-11-12T14:00:00", "Frühdienst"),
			defaultShift("s9", "2", "2025-11-13T14:00:00", "2025-11-13T22:00:00", "Spätdienst"),
			defaultShift("s10", "2", "2025-11-14T22:00:00", "2025-11-15T06:00:00", "Nachtdienst"),
			defaultShift("s11", "3", "2025-11-10T08:00:00", "2025-11-10T16:00:00", "Reguläre Schicht"),
			defaultShift("s12", "3", "2025-11-13T08:00:00", "2025-11-13T16:00:00", "Reguläre Schicht"),
			defaultShift("s13", "4", "2025-11-10T07:00:00", "2025-11-10T15:00:00", "OP-Dienst"),
			defaultShift("s14", "4", "2025-11-11T07:00:00", "2025-11-11T15:00:00", "OP-Dienst"),
			defaultShift("s15", "4", "2025-11-12T07:00:00", "2025-11-12T15:00:00", "OP-Dienst"),
			defaultShift("s16", "4", "2025-11-13T07:00:00", "2025-11-13T15:00:00", "OP-Dienst"),
			defaultShift("s17", "4", "2025-11-14T07:00:00", "2025-11-14T15:00:00", "OP-Dienst"),
			defaultShift("s18", "5", "2025-11-10T06:00:00", "2025-11-10T18:00:00", "Intensivstation"),
			defaultShift("s19", "5", "2025-11-12T06:00:00", "2025-11-12T18:00:00", "Intensivstation"),
			defaultShift("s20", "5", "2025-11-14T06:00:00", "2025-11-14T18:00:00", "Intensivstation"),
			defaultShift("s21", "5", "2025-11-15T18:00:00", "2025-11-16T06:00:00", "Nachtdienst"),
			defaultShift("s22", "6", "2025-11-11T08:00:00", "2025-11-11T16:00:00", "OP-Begleitung"),
			defaultShift("s23", "7", "2025-11-10T06:00:00", "2025-11-10T14:00:00", "Notaufnahme Frühdienst"),
			defaultShift("s24", "7", "2025-11-11T14:00:00", "2025-11-11T22:00:00", "Notaufnahme Spätdienst"),
			defaultShift("s25", "7", "2025-11-12T22:00:00", "2025-11-13T06:00:00", "Notaufnahme Nachtdienst"),
			defaultShift("s26", "7", "2025-11-14T06:00:00", "2025-11-14T14:00:00", "Notaufnahme Frühdienst"),
			defaultShift("s27", "7", "2025-11-15T14:00:00", "2025-11-15T22:00:00", "Notaufnahme Spätdienst"),
			defaultShift("s28", "8", "2025-11-10T08:00:00", "2025-11-10T17:00:00", "Sprechstunde & OP"),
			defaultShift("s29", "8", "2025-11-11T08:00:00", "2025-11-11T17:00:00", "OP-Tag"),
			defaultShift("s30", "8", "2025-11-12T08:00:00", "2025-11-12T17:00:00", "Sprechstunde"),
			defaultShift("s31", "8", "2025-11-13T08:00:00", "2025-11-13T20:00:00", "OP-Marathon"),
			defaultShift("s32", "8", "2025-11-14T08:00:00", "2025-11-14T17:00:00", "Visite & OP"),
			defaultShift("s33", "9", "2025-11-10T08:00:00", "2025-11-10T12:00:00", "Therapiesitzungen"),
			defaultShift("s34", "9", "2025-11-11T08:00:00", "2025-11-11T12:00:00", "Therapiesitzungen"),
			defaultShift("s35", "9", "2025-11-12T13:00:00", "2025-11-12T17:00:00", "Gruppentherapie"),
			defaultShift("s36", "9", "2025-11-13T08:00:00", "2025-11-13T12:00:00", "Therapiesitzungen"),
			defaultShift("s37", "9", "2025-11-14T08:00:00", "2025-11-14T12:00:00", "Therapiesitzungen"),
			defaultShift("s38", "9", "2025-11-15T09:00:00", "2025-11-15T13:00:00", "Reha-Betreuung"),
			defaultShift("s39", "10", "2025-11-12T09:00:00", "2025-11-12T13:00:00", "Röntgendienst"),
		},
	}
}

func defaultShift(id, employeeID, start, end, note string) domain.Shift {
	return domain.Shift{
		ID:         id,
		EmployeeID: employeeID,
		Start:      mustLocal(start),
		End:        mustLocal(end),
		Note:       note,
	}
}

func mustLocal(value string) time.Time {
	t, err := domain.ParseLocalTime(value)
	if err != nil {
		panic(err)
	}
	return t
}

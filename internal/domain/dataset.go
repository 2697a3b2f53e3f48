package domain

// Dataset is the complete roster state: every employee and every shift.
type Dataset struct {
	Employees []Employee
	Shifts    []Shift
}

// Clone returns a deep copy so callers cannot alias the receiver's slices.
func (d Dataset) Clone() Dataset {
	return Dataset{
		Employees: append([]Employee(nil), d.Employees...),
		Shifts:    append([]Shift(nil), d.Shifts...),
	}
}

package domain

import (
	"sort"
	"strings"
	"time"
)

// Employee is a roster entry. Shifts reference it by ID only.
type Employee struct {
	ID        string
	Name      string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeStatusFilter narrows an employee listing by activity.
type EmployeeStatusFilter string

const (
	EmployeeStatusAll      EmployeeStatusFilter = "all"
	EmployeeStatusActive   EmployeeStatusFilter = "active"
	EmployeeStatusInactive EmployeeStatusFilter = "inactive"
)

// EmployeeSort enumerates supported listing orders.
type EmployeeSort string

const (
	EmployeeSortNameAsc  EmployeeSort = "name-asc"
	EmployeeSortNameDesc EmployeeSort = "name-desc"
	EmployeeSortRoleAsc  EmployeeSort = "role-asc"
	EmployeeSortRoleDesc EmployeeSort = "role-desc"
)

// EmployeeQuery combines status filter, free-text search and ordering.
type EmployeeQuery struct {
	Status EmployeeStatusFilter
	Search string
	Sort   EmployeeSort
}

// Valid reports whether the status filter is known. Empty means all.
func (f EmployeeStatusFilter) Valid() bool {
	switch f {
	case "", EmployeeStatusAll, EmployeeStatusActive, EmployeeStatusInactive:
		return true
	}
	return false
}

// Valid reports whether the sort key is known. Empty means name-asc.
func (s EmployeeSort) Valid() bool {
	switch s {
	case "", EmployeeSortNameAsc, EmployeeSortNameDesc, EmployeeSortRoleAsc, EmployeeSortRoleDesc:
		return true
	}
	return false
}

// Matches reports whether e passes the status filter and search term.
func (q EmployeeQuery) Matches(e Employee) bool {
	switch q.Status {
	case EmployeeStatusActive:
		if !e.IsActive {
			return false
		}
	case EmployeeStatusInactive:
		if e.IsActive {
			return false
		}
	}
	term := strings.ToLower(strings.TrimSpace(q.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), term) ||
		strings.Contains(strings.ToLower(e.Role), term)
}

// Apply filters and sorts employees into a new slice. The input is not modified.
func (q EmployeeQuery) Apply(employees []Employee) []Employee {
	result := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if q.Matches(e) {
			result = append(result, e)
		}
	}

	less := func(a, b Employee) bool { return compareFold(a.Name, b.Name) < 0 }
	switch q.Sort {
	case EmployeeSortNameDesc:
		less = func(a, b Employee) bool { return compareFold(a.Name, b.Name) > 0 }
	case EmployeeSortRoleAsc:
		less = func(a, b Employee) bool { return compareFold(a.Role, b.Role) < 0 }
	case EmployeeSortRoleDesc:
		less = func(a, b Employee) bool { return compareFold(a.Role, b.Role) > 0 }
	}
	sort.SliceStable(result, func(i, j int) bool { return less(result[i], result[j]) })
	return result
}

// SplitByActivity partitions employees into active and inactive groups, keeping order.
func SplitByActivity(employees []Employee) (active, inactive []Employee) {
	active = make([]Employee, 0, len(employees))
	inactive = make([]Employee, 0)
	for _, e := range employees {
		if e.IsActive {
			active = append(active, e)
		} else {
			inactive = append(inactive, e)
		}
	}
	return active, inactive
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

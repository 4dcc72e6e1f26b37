package domain

import "time"

// Department groups employees under a named organizational unit.
type Department struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DepartmentRoster is a department together with its headcount.
type DepartmentRoster struct {
	Department Department `json:"department"`
	Headcount  int        `json:"headcount"`
}

// Employee represents a single directory record.
type Employee struct {
	ID           int64      `json:"id"`
	DepartmentID int64      `json:"department_id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	Salary       int64      `json:"salary"`
	HiredAt      time.Time  `json:"hired_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// FullName returns the display name for an employee.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeeUpdate carries the mutable fields of an employee.
// Nil pointers mean "leave unchanged".
type EmployeeUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Salary       *int64
	DepartmentID *int64
}

// IsEmpty reports whether the update would change nothing.
func (u *EmployeeUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil &&
		u.Salary == nil && u.DepartmentID == nil
}

// EmployeeFilter narrows a directory listing.
type EmployeeFilter struct {
	DepartmentID *int64
	Limit        int
	Offset       int
}

// Listing defaults, applied by the service layer before hitting the repository.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

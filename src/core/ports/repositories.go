// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"staffdir/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// EmployeePage is one page of a directory listing.
type EmployeePage struct {
	Employees []domain.Employee
	Total     int64
	Limit     int
	Offset    int
}

// DirectoryRepository persists employees and departments.
type DirectoryRepository interface {
	Repository

	// Employees
	CreateEmployee(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	ListEmployees(ctx context.Context, filter domain.EmployeeFilter) (*EmployeePage, error)
	UpdateEmployee(ctx context.Context, id int64, upd domain.EmployeeUpdate) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error

	// Departments
	CreateDepartment(ctx context.Context, name string) (*domain.Department, error)
	GetDepartment(ctx context.Context, id int64) (*domain.DepartmentRoster, error)
	ListDepartments(ctx context.Context) ([]domain.DepartmentRoster, error)
	DeleteDepartment(ctx context.Context, id int64) error

	// TransferEmployee moves an employee into another department atomically.
	TransferEmployee(ctx context.Context, employeeID, departmentID int64) (*domain.Employee, error)
}

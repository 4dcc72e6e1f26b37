package handler_test

import (
	"context"

	"staffdir/src/core/domain"
	"staffdir/src/core/ports"
)

// stubRepo implements ports.DirectoryRepository with overridable functions.
// Unset functions return not-found so each test only wires what it needs.
type stubRepo struct {
	createEmployee   func(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	getEmployee      func(ctx context.Context, id int64) (*domain.Employee, error)
	listEmployees    func(ctx context.Context, filter domain.EmployeeFilter) (*ports.EmployeePage, error)
	updateEmployee   func(ctx context.Context, id int64, upd domain.EmployeeUpdate) (*domain.Employee, error)
	deleteEmployee   func(ctx context.Context, id int64) error
	createDepartment func(ctx context.Context, name string) (*domain.Department, error)
	getDepartment    func(ctx context.Context, id int64) (*domain.DepartmentRoster, error)
	listDepartments  func(ctx context.Context) ([]domain.DepartmentRoster, error)
	deleteDepartment func(ctx context.Context, id int64) error
	transferEmployee func(ctx context.Context, employeeID, departmentID int64) (*domain.Employee, error)
	healthErr        error
}

func (s *stubRepo) Health(_ context.Context) error { return s.healthErr }

func (s *stubRepo) CreateEmployee(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if s.createEmployee != nil {
		return s.createEmployee(ctx, e)
	}
	return nil, domain.NewNotFoundError("employee")
}

func (s *stubRepo) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	if s.getEmployee != nil {
		return s.getEmployee(ctx, id)
	}
	return nil, domain.NewNotFoundError("employee")
}

func (s *stubRepo) ListEmployees(ctx context.Context, filter domain.EmployeeFilter) (*ports.EmployeePage, error) {
	if s.listEmployees != nil {
		return s.listEmployees(ctx, filter)
	}
	return &ports.EmployeePage{Limit: filter.Limit, Offset: filter.Offset}, nil
}

func (s *stubRepo) UpdateEmployee(ctx context.Context, id int64, upd domain.EmployeeUpdate) (*domain.Employee, error) {
	if s.updateEmployee != nil {
		return s.updateEmployee(ctx, id, upd)
	}
	return nil, domain.NewNotFoundError("employee")
}

func (s *stubRepo) DeleteEmployee(ctx context.Context, id int64) error {
	if s.deleteEmployee != nil {
		return s.deleteEmployee(ctx, id)
	}
	return domain.NewNotFoundError("employee")
}

func (s *stubRepo) CreateDepartment(ctx context.Context, name string) (*domain.Department, error) {
	if s.createDepartment != nil {
		return s.createDepartment(ctx, name)
	}
	return nil, domain.NewNotFoundError("department")
}

func (s *stubRepo) GetDepartment(ctx context.Context, id int64) (*domain.DepartmentRoster, error) {
	if s.getDepartment != nil {
		return s.getDepartment(ctx, id)
	}
	return nil, domain.NewNotFoundError("department")
}

func (s *stubRepo) ListDepartments(ctx context.Context) ([]domain.DepartmentRoster, error) {
	if s.listDepartments != nil {
		return s.listDepartments(ctx)
	}
	return nil, nil
}

func (s *stubRepo) DeleteDepartment(ctx context.Context, id int64) error {
	if s.deleteDepartment != nil {
		return s.deleteDepartment(ctx, id)
	}
	return domain.NewNotFoundError("department")
}

func (s *stubRepo) TransferEmployee(ctx context.Context, employeeID, departmentID int64) (*domain.Employee, error) {
	if s.transferEmployee != nil {
		return s.transferEmployee(ctx, employeeID, departmentID)
	}
	return nil, domain.NewNotFoundError("employee")
}

var _ ports.DirectoryRepository = (*stubRepo)(nil)

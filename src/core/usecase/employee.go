// Package usecase contains the application's business logic.
// Services validate input, enforce business rules, and delegate
// persistence to repository ports.
package usecase

import (
	"context"
	"log/slog"
	"strings"

	"staffdir/src/core/domain"
	"staffdir/src/core/ports"
)

// EmployeeService handles employee directory flows.
type EmployeeService struct {
	repo ports.DirectoryRepository
	log  *slog.Logger
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo ports.DirectoryRepository, log *slog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, log: log}
}

// CreateEmployeeInput carries validated input for Create.
type CreateEmployeeInput struct {
	DepartmentID int64
	FirstName    string
	LastName     string
	Email        string
	Salary       int64
}

func (s *EmployeeService) Create(ctx context.Context, in CreateEmployeeInput) (*domain.Employee, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if in.FirstName == "" {
		return nil, domain.NewValidationError("first_name", "cannot be empty")
	}
	if in.LastName == "" {
		return nil, domain.NewValidationError("last_name", "cannot be empty")
	}
	if !validEmail(in.Email) {
		return nil, domain.NewValidationError("email", "must be a valid address")
	}
	if in.Salary < 0 {
		return nil, domain.NewValidationError("salary", "cannot be negative")
	}
	if in.DepartmentID <= 0 {
		return nil, domain.NewValidationError("department_id", "must be a positive id")
	}

	created, err := s.repo.CreateEmployee(ctx, &domain.Employee{
		DepartmentID: in.DepartmentID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Salary:       in.Salary,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("employee created", "employee_id", created.ID, "department_id", created.DepartmentID)
	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive id")
	}
	return s.repo.GetEmployee(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context, filter domain.EmployeeFilter) (*ports.EmployeePage, error) {
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultListLimit
	}
	if filter.Limit > domain.MaxListLimit {
		filter.Limit = domain.MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.DepartmentID != nil && *filter.DepartmentID <= 0 {
		return nil, domain.NewValidationError("department_id", "must be a positive id")
	}
	return s.repo.ListEmployees(ctx, filter)
}

func (s *EmployeeService) Update(ctx context.Context, id int64, upd domain.EmployeeUpdate) (*domain.Employee, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive id")
	}
	if upd.IsEmpty() {
		return nil, domain.NewValidationError("body", "no fields to update")
	}
	if upd.FirstName != nil && strings.TrimSpace(*upd.FirstName) == "" {
		return nil, domain.NewValidationError("first_name", "cannot be empty")
	}
	if upd.LastName != nil && strings.TrimSpace(*upd.LastName) == "" {
		return nil, domain.NewValidationError("last_name", "cannot be empty")
	}
	if upd.Email != nil {
		normalized := strings.TrimSpace(strings.ToLower(*upd.Email))
		if !validEmail(normalized) {
			return nil, domain.NewValidationError("email", "must be a valid address")
		}
		upd.Email = &normalized
	}
	if upd.Salary != nil && *upd.Salary < 0 {
		return nil, domain.NewValidationError("salary", "cannot be negative")
	}
	if upd.DepartmentID != nil && *upd.DepartmentID <= 0 {
		return nil, domain.NewValidationError("department_id", "must be a positive id")
	}

	updated, err := s.repo.UpdateEmployee(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.log.Info("employee updated", "employee_id", id)
	return updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive id")
	}
	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	s.log.Info("employee deleted", "employee_id", id)
	return nil
}

// validEmail applies the minimal structural check the directory needs.
// Real deliverability is out of scope here.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	host := email[at+1:]
	return strings.Contains(host, ".") && !strings.ContainsAny(email, " \t")
}

package usecase

import (
	"context"
	"log/slog"
	"strings"

	"staffdir/src/core/domain"
	"staffdir/src/core/ports"
)

// DepartmentService handles department flows.
type DepartmentService struct {
	repo ports.DirectoryRepository
	log  *slog.Logger
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(repo ports.DirectoryRepository, log *slog.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, log: log}
}

func (s *DepartmentService) Create(ctx context.Context, name string) (*domain.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "cannot be empty")
	}
	if len(name) > 120 {
		return nil, domain.NewValidationError("name", "too long")
	}

	dept, err := s.repo.CreateDepartment(ctx, name)
	if err != nil {
		return nil, err
	}
	s.log.Info("department created", "department_id", dept.ID, "name", dept.Name)
	return dept, nil
}

func (s *DepartmentService) Get(ctx context.Context, id int64) (*domain.DepartmentRoster, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive id")
	}
	return s.repo.GetDepartment(ctx, id)
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.DepartmentRoster, error) {
	return s.repo.ListDepartments(ctx)
}

func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive id")
	}
	if err := s.repo.DeleteDepartment(ctx, id); err != nil {
		return err
	}
	s.log.Info("department deleted", "department_id", id)
	return nil
}

func (s *DepartmentService) Transfer(ctx context.Context, employeeID, departmentID int64) (*domain.Employee, error) {
	if employeeID <= 0 {
		return nil, domain.NewValidationError("employee_id", "must be a positive id")
	}
	if departmentID <= 0 {
		return nil, domain.NewValidationError("department_id", "must be a positive id")
	}

	emp, err := s.repo.TransferEmployee(ctx, employeeID, departmentID)
	if err != nil {
		return nil, err
	}
	s.log.Info("employee transferred", "employee_id", employeeID, "department_id", departmentID)
	return emp, nil
}

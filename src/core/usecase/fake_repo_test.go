package usecase

import (
	"context"
	"sort"
	"time"

	"staffdir/src/core/domain"
	"staffdir/src/core/ports"
)

// fakeRepo is an in-memory DirectoryRepository for service tests.
type fakeRepo struct {
	employees   map[int64]*domain.Employee
	departments map[int64]*domain.Department
	nextEmpID   int64
	nextDeptID  int64
	healthErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		employees:   make(map[int64]*domain.Employee),
		departments: make(map[int64]*domain.Department),
		nextEmpID:   1,
		nextDeptID:  1,
	}
}

func (f *fakeRepo) Health(_ context.Context) error {
	return f.healthErr
}

func (f *fakeRepo) CreateEmployee(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	if _, ok := f.departments[e.DepartmentID]; !ok {
		return nil, domain.NewNotFoundError("department")
	}
	for _, existing := range f.employees {
		if existing.Email == e.Email {
			return nil, domain.NewConflictError("email already registered")
		}
	}
	created := *e
	created.ID = f.nextEmpID
	f.nextEmpID++
	created.CreatedAt = time.Now()
	if created.HiredAt.IsZero() {
		created.HiredAt = created.CreatedAt
	}
	f.employees[created.ID] = &created
	out := created
	return &out, nil
}

func (f *fakeRepo) GetEmployee(_ context.Context, id int64) (*domain.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, domain.NewNotFoundError("employee")
	}
	out := *e
	return &out, nil
}

func (f *fakeRepo) ListEmployees(_ context.Context, filter domain.EmployeeFilter) (*ports.EmployeePage, error) {
	var all []domain.Employee
	for _, e := range f.employees {
		if filter.DepartmentID != nil && e.DepartmentID != *filter.DepartmentID {
			continue
		}
		all = append(all, *e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	if filter.Offset < len(all) {
		all = all[filter.Offset:]
	} else {
		all = nil
	}
	if len(all) > filter.Limit {
		all = all[:filter.Limit]
	}
	return &ports.EmployeePage{
		Employees: all,
		Total:     total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	}, nil
}

func (f *fakeRepo) UpdateEmployee(_ context.Context, id int64, upd domain.EmployeeUpdate) (*domain.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, domain.NewNotFoundError("employee")
	}
	if upd.FirstName != nil {
		e.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		e.LastName = *upd.LastName
	}
	if upd.Email != nil {
		e.Email = *upd.Email
	}
	if upd.Salary != nil {
		e.Salary = *upd.Salary
	}
	if upd.DepartmentID != nil {
		if _, ok := f.departments[*upd.DepartmentID]; !ok {
			return nil, domain.NewNotFoundError("department")
		}
		e.DepartmentID = *upd.DepartmentID
	}
	now := time.Now()
	e.UpdatedAt = &now
	out := *e
	return &out, nil
}

func (f *fakeRepo) DeleteEmployee(_ context.Context, id int64) error {
	if _, ok := f.employees[id]; !ok {
		return domain.NewNotFoundError("employee")
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeRepo) CreateDepartment(_ context.Context, name string) (*domain.Department, error) {
	for _, d := range f.departments {
		if d.Name == name {
			return nil, domain.NewConflictError("department name already taken")
		}
	}
	d := &domain.Department{ID: f.nextDeptID, Name: name, CreatedAt: time.Now()}
	f.nextDeptID++
	f.departments[d.ID] = d
	out := *d
	return &out, nil
}

func (f *fakeRepo) GetDepartment(_ context.Context, id int64) (*domain.DepartmentRoster, error) {
	d, ok := f.departments[id]
	if !ok {
		return nil, domain.NewNotFoundError("department")
	}
	count := 0
	for _, e := range f.employees {
		if e.DepartmentID == id {
			count++
		}
	}
	return &domain.DepartmentRoster{Department: *d, Headcount: count}, nil
}

func (f *fakeRepo) ListDepartments(ctx context.Context) ([]domain.DepartmentRoster, error) {
	var ids []int64
	for id := range f.departments {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var rosters []domain.DepartmentRoster
	for _, id := range ids {
		roster, err := f.GetDepartment(ctx, id)
		if err != nil {
			return nil, err
		}
		rosters = append(rosters, *roster)
	}
	return rosters, nil
}

func (f *fakeRepo) DeleteDepartment(_ context.Context, id int64) error {
	if _, ok := f.departments[id]; !ok {
		return domain.NewNotFoundError("department")
	}
	for _, e := range f.employees {
		if e.DepartmentID == id {
			return domain.NewConflictError("department still has employees")
		}
	}
	delete(f.departments, id)
	return nil
}

func (f *fakeRepo) TransferEmployee(_ context.Context, employeeID, departmentID int64) (*domain.Employee, error) {
	if _, ok := f.departments[departmentID]; !ok {
		return nil, domain.NewNotFoundError("department")
	}
	e, ok := f.employees[employeeID]
	if !ok {
		return nil, domain.NewNotFoundError("employee")
	}
	e.DepartmentID = departmentID
	now := time.Now()
	e.UpdatedAt = &now
	out := *e
	return &out, nil
}

var _ ports.DirectoryRepository = (*fakeRepo)(nil)

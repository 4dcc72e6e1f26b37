package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"staffdir/src/core/domain"
	"staffdir/src/core/ports"
	"staffdir/src/infra/db"
)

// PostgresRepository implements DirectoryRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// Employees

const employeeColumns = `id, department_id, first_name, last_name, email, salary, hired_at, created_at, updated_at`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID, &e.DepartmentID, &e.FirstName, &e.LastName, &e.Email,
		&e.Salary, &e.HiredAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PostgresRepository) CreateEmployee(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	const q = `
		INSERT INTO employees (department_id, first_name, last_name, email, salary, hired_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6::timestamptz, now()))
		RETURNING ` + employeeColumns
	var hiredAt any
	if !e.HiredAt.IsZero() {
		hiredAt = e.HiredAt
	}
	created, err := scanEmployee(r.pool.QueryRow(ctx, q,
		e.DepartmentID, e.FirstName, e.LastName, e.Email, e.Salary, hiredAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("email already registered")
		}
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError("department")
		}
		return nil, err
	}
	return created, nil
}

func (r *PostgresRepository) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	const q = `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`
	e, err := scanEmployee(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("employee")
		}
		return nil, err
	}
	return e, nil
}

func (r *PostgresRepository) ListEmployees(ctx context.Context, filter domain.EmployeeFilter) (*ports.EmployeePage, error) {
	q := `
		SELECT ` + employeeColumns + `
		FROM employees
	`
	countQ := `SELECT COUNT(*) FROM employees`
	args := []any{}
	if filter.DepartmentID != nil {
		q += ` WHERE department_id = $1`
		countQ += ` WHERE department_id = $1`
		args = append(args, *filter.DepartmentID)
	}
	q += fmt.Sprintf(` ORDER BY last_name, first_name, id LIMIT %d OFFSET %d`, filter.Limit, filter.Offset)

	var total int64
	if err := r.pool.QueryRow(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.log.Error("ListEmployees query failed", "error", err)
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(
			&e.ID, &e.DepartmentID, &e.FirstName, &e.LastName, &e.Email,
			&e.Salary, &e.HiredAt, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &ports.EmployeePage{
		Employees: employees,
		Total:     total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	}, nil
}

func (r *PostgresRepository) UpdateEmployee(ctx context.Context, id int64, upd domain.EmployeeUpdate) (*domain.Employee, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}
	next := 2
	appendSet := func(col string, val any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, next))
		args = append(args, val)
		next++
	}
	if upd.FirstName != nil {
		appendSet("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		appendSet("last_name", *upd.LastName)
	}
	if upd.Email != nil {
		appendSet("email", *upd.Email)
	}
	if upd.Salary != nil {
		appendSet("salary", *upd.Salary)
	}
	if upd.DepartmentID != nil {
		appendSet("department_id", *upd.DepartmentID)
	}

	q := `
		UPDATE employees
		SET ` + strings.Join(set, ", ") + `
		WHERE id = $1
		RETURNING ` + employeeColumns
	e, err := scanEmployee(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("employee")
		}
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("email already registered")
		}
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError("department")
		}
		return nil, err
	}
	return e, nil
}

func (r *PostgresRepository) DeleteEmployee(ctx context.Context, id int64) error {
	const q = `DELETE FROM employees WHERE id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("employee")
	}
	return nil
}

// Departments

func (r *PostgresRepository) CreateDepartment(ctx context.Context, name string) (*domain.Department, error) {
	const q = `
		INSERT INTO departments (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`
	var d domain.Department
	if err := r.pool.QueryRow(ctx, q, name).Scan(&d.ID, &d.Name, &d.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("department name already taken")
		}
		return nil, err
	}
	return &d, nil
}

func (r *PostgresRepository) GetDepartment(ctx context.Context, id int64) (*domain.DepartmentRoster, error) {
	const q = `
		SELECT d.id, d.name, d.created_at, COUNT(e.id)
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		WHERE d.id = $1
		GROUP BY d.id, d.name, d.created_at
	`
	var roster domain.DepartmentRoster
	if err := r.pool.QueryRow(ctx, q, id).Scan(
		&roster.Department.ID, &roster.Department.Name, &roster.Department.CreatedAt, &roster.Headcount,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("department")
		}
		return nil, err
	}
	return &roster, nil
}

func (r *PostgresRepository) ListDepartments(ctx context.Context) ([]domain.DepartmentRoster, error) {
	const q = `
		SELECT d.id, d.name, d.created_at, COUNT(e.id)
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		GROUP BY d.id, d.name, d.created_at
		ORDER BY d.id
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rosters []domain.DepartmentRoster
	for rows.Next() {
		var roster domain.DepartmentRoster
		if err := rows.Scan(
			&roster.Department.ID, &roster.Department.Name, &roster.Department.CreatedAt, &roster.Headcount,
		); err != nil {
			return nil, err
		}
		rosters = append(rosters, roster)
	}
	return rosters, rows.Err()
}

// DeleteDepartment removes an empty department. Departments that still have
// employees assigned are protected and the call returns a conflict.
func (r *PostgresRepository) DeleteDepartment(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var headcount int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE department_id = $1`, id).Scan(&headcount); err != nil {
		return err
	}
	if headcount > 0 {
		return domain.NewConflictError("department still has employees")
	}

	res, err := tx.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("department")
	}

	return tx.Commit(ctx)
}

// TransferEmployee moves an employee into another department in one transaction.
func (r *PostgresRepository) TransferEmployee(ctx context.Context, employeeID, departmentID int64) (*domain.Employee, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM departments WHERE id = $1)`, departmentID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("department")
	}

	const q = `
		UPDATE employees
		SET department_id = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + employeeColumns
	e, err := scanEmployee(tx.QueryRow(ctx, q, employeeID, departmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("employee")
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdir/src/app/middleware"
	"staffdir/src/core/domain"
	"staffdir/src/core/ports"
	"staffdir/src/infra/config"
)

// nopRepo satisfies DirectoryRepository for routing tests.
type nopRepo struct{}

func (nopRepo) Health(context.Context) error { return nil }
func (nopRepo) CreateEmployee(context.Context, *domain.Employee) (*domain.Employee, error) {
	return nil, domain.NewNotFoundError("employee")
}
func (nopRepo) GetEmployee(context.Context, int64) (*domain.Employee, error) {
	return nil, domain.NewNotFoundError("employee")
}
func (nopRepo) ListEmployees(_ context.Context, f domain.EmployeeFilter) (*ports.EmployeePage, error) {
	return &ports.EmployeePage{Limit: f.Limit, Offset: f.Offset}, nil
}
func (nopRepo) UpdateEmployee(context.Context, int64, domain.EmployeeUpdate) (*domain.Employee, error) {
	return nil, domain.NewNotFoundError("employee")
}
func (nopRepo) DeleteEmployee(context.Context, int64) error {
	return domain.NewNotFoundError("employee")
}
func (nopRepo) CreateDepartment(context.Context, string) (*domain.Department, error) {
	return nil, domain.NewNotFoundError("department")
}
func (nopRepo) GetDepartment(context.Context, int64) (*domain.DepartmentRoster, error) {
	return nil, domain.NewNotFoundError("department")
}
func (nopRepo) ListDepartments(context.Context) ([]domain.DepartmentRoster, error) {
	return nil, nil
}
func (nopRepo) DeleteDepartment(context.Context, int64) error {
	return domain.NewNotFoundError("department")
}
func (nopRepo) TransferEmployee(context.Context, int64, int64) (*domain.Employee, error) {
	return nil, domain.NewNotFoundError("employee")
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	srv := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), nopRepo{})
	return srv
}

func TestHealthRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestDetailedHealthRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database"`)
}

func TestNoRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestRequestIDHeaderOnResponses(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestEmployeeRoutesWired(t *testing.T) {
	srv := newTestServer(t)

	// Listing succeeds against the empty repo.
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/employees", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Unknown employee id maps to 404 through the domain error path.
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/employees/123", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

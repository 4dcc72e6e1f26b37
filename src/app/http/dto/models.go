package dto

// CreateEmployeeRequest is the payload for POST /v1/employees.
type CreateEmployeeRequest struct {
	DepartmentID int64  `json:"department_id" binding:"required"`
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Salary       int64  `json:"salary"`
}

// UpdateEmployeeRequest is the payload for PATCH /v1/employees/:id.
// All fields are optional; at least one must be present.
type UpdateEmployeeRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	Salary       *int64  `json:"salary"`
	DepartmentID *int64  `json:"department_id"`
}

// CreateDepartmentRequest is the payload for POST /v1/departments.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// TransferRequest moves an employee to a new department.
type TransferRequest struct {
	DepartmentID int64 `json:"department_id" binding:"required"`
}

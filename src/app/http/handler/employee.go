package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"staffdir/src/app/http/dto"
	"staffdir/src/app/http/response"
	"staffdir/src/app/middleware"
	"staffdir/src/core/domain"
	"staffdir/src/core/usecase"
)

// EmployeeHandler handles employee endpoints.
type EmployeeHandler struct {
	employeeService *usecase.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService *usecase.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create handles POST /v1/employees.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error(), middleware.GetRequestID(c))
		return
	}

	emp, err := h.employeeService.Create(c.Request.Context(), usecase.CreateEmployeeInput{
		DepartmentID: req.DepartmentID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Salary:       req.Salary,
	})
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, emp)
}

// Get handles GET /v1/employees/:employee_id.
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "employee_id")
	if !ok {
		return
	}
	emp, err := h.employeeService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, emp)
}

// List handles GET /v1/employees with optional department_id, limit, offset.
func (h *EmployeeHandler) List(c *gin.Context) {
	var filter domain.EmployeeFilter

	if raw := c.Query("department_id"); raw != "" {
		deptID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid department_id", middleware.GetRequestID(c))
			return
		}
		filter.DepartmentID = &deptID
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "invalid limit", middleware.GetRequestID(c))
			return
		}
		filter.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "invalid offset", middleware.GetRequestID(c))
			return
		}
		filter.Offset = offset
	}

	page, err := h.employeeService.List(c.Request.Context(), filter)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Page(c, page.Employees, page.Total, page.Limit, page.Offset)
}

// Update handles PATCH /v1/employees/:employee_id.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "employee_id")
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error(), middleware.GetRequestID(c))
		return
	}

	emp, err := h.employeeService.Update(c.Request.Context(), id, domain.EmployeeUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, emp)
}

// Delete handles DELETE /v1/employees/:employee_id.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "employee_id")
	if !ok {
		return
	}
	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

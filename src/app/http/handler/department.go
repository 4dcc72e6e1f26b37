package handler

import (
	"github.com/gin-gonic/gin"

	"staffdir/src/app/http/dto"
	"staffdir/src/app/http/response"
	"staffdir/src/app/middleware"
	"staffdir/src/core/usecase"
)

// DepartmentHandler handles department endpoints.
type DepartmentHandler struct {
	departmentService *usecase.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(departmentService *usecase.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// Create handles POST /v1/departments.
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error(), middleware.GetRequestID(c))
		return
	}

	dept, err := h.departmentService.Create(c.Request.Context(), req.Name)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, dept)
}

// Get handles GET /v1/departments/:department_id.
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "department_id")
	if !ok {
		return
	}
	roster, err := h.departmentService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, roster)
}

// List handles GET /v1/departments.
func (h *DepartmentHandler) List(c *gin.Context) {
	rosters, err := h.departmentService.List(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"departments": rosters})
}

// Delete handles DELETE /v1/departments/:department_id.
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "department_id")
	if !ok {
		return
	}
	if err := h.departmentService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

// Transfer handles POST /v1/employees/:employee_id/transfer.
func (h *DepartmentHandler) Transfer(c *gin.Context) {
	employeeID, ok := pathID(c, "employee_id")
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error(), middleware.GetRequestID(c))
		return
	}

	emp, err := h.departmentService.Transfer(c.Request.Context(), employeeID, req.DepartmentID)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, emp)
}

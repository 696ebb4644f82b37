package handlers

import (
	"errors"
	"strings"

	"payconsig/internal/adapters/persistence/models"
	"payconsig/internal/core/domain"
	"payconsig/internal/core/services"
	"payconsig/internal/pkg/pagination"
	"payconsig/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler handles applicant maintenance endpoints
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// CreateEmployeeRequest represents employee creation request body
type CreateEmployeeRequest struct {
	Name      string  `json:"name"`
	CPF       string  `json:"cpf"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Salary    float64 `json:"salary"`
	CompanyID string  `json:"company_id"`
}

// UpdateEmployeeRequest represents employee update request body
type UpdateEmployeeRequest struct {
	Name      *string  `json:"name"`
	Email     *string  `json:"email"`
	Salary    *float64 `json:"salary"`
	CompanyID *string  `json:"company_id"`
}

// Create handles back-office employee creation
// @Summary Create employee
// @Description Register an applicant on behalf of their employer
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEmployeeRequest true "Employee data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if req.CPF == "" {
		return response.BadRequest(c, "CPF is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if len(req.Password) < 8 {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}
	if req.Salary <= 0 {
		return response.BadRequest(c, "Salary must be greater than zero")
	}
	if req.CompanyID == "" {
		return response.BadRequest(c, "Company ID is required")
	}

	employee, err := h.employeeService.Create(c.Context(), &services.CreateEmployeeInput{
		Name:      strings.TrimSpace(req.Name),
		CPF:       strings.TrimSpace(req.CPF),
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		Salary:    req.Salary,
		CompanyID: strings.TrimSpace(req.CompanyID),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCPF):
			return response.BadRequest(c, "Invalid CPF")
		case errors.Is(err, domain.ErrInvalidEmail):
			return response.BadRequest(c, "Invalid email address")
		case errors.Is(err, services.ErrCompanyNotFound):
			return response.NotFound(c, "Company not found")
		case errors.Is(err, services.ErrCPFTaken):
			return response.Conflict(c, "CPF already registered")
		case errors.Is(err, services.ErrEmailTaken):
			return response.Conflict(c, "Email already registered")
		default:
			return response.InternalServerError(c, "Failed to create employee")
		}
	}

	return response.Created(c, "Employee created successfully", employee.ToResponse())
}

// GetByID returns a single employee
// @Summary Get employee
// @Description Get an applicant by ID with the employer preloaded
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	employee, err := h.employeeService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return response.NotFound(c, "Employee not found")
		}
		return response.InternalServerError(c, "Failed to get employee")
	}

	return response.Success(c, "Employee retrieved successfully", employee.ToResponse())
}

// List returns a page of employees
// @Summary List employees
// @Description List applicants with pagination
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	employees, total, err := h.employeeService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list employees")
	}

	items := make([]*models.EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		items = append(items, employee.ToResponse())
	}

	return response.Success(c, "Employees retrieved successfully",
		pagination.NewResponse(items, params, total))
}

// Update handles employee update
// @Summary Update employee
// @Description Apply a partial update to an applicant
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param body body UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /employees/{id} [patch]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var req UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateEmployeeInput{
		Name:      req.Name,
		Email:     req.Email,
		Salary:    req.Salary,
		CompanyID: req.CompanyID,
	}

	employee, err := h.employeeService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			return response.NotFound(c, "Employee not found")
		case errors.Is(err, services.ErrCompanyNotFound):
			return response.NotFound(c, "Company not found")
		case errors.Is(err, domain.ErrInvalidEmail):
			return response.BadRequest(c, "Invalid email address")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Salary must be greater than zero")
		case errors.Is(err, services.ErrEmailTaken):
			return response.Conflict(c, "Email already registered")
		default:
			return response.InternalServerError(c, "Failed to update employee")
		}
	}

	return response.Success(c, "Employee updated successfully", employee.ToResponse())
}

// Delete handles employee deletion
// @Summary Delete employee
// @Description Soft-delete an applicant
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.employeeService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return response.NotFound(c, "Employee not found")
		}
		return response.InternalServerError(c, "Failed to delete employee")
	}

	return response.Success(c, "Employee deleted successfully", nil)
}

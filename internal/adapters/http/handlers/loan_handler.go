package handlers

import (
	"errors"

	"payconsig/internal/adapters/persistence/models"
	"payconsig/internal/core/domain"
	"payconsig/internal/core/services"
	"payconsig/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan simulation and origination endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// SimulateRequest represents simulation request body
type SimulateRequest struct {
	Amount float64 `json:"amount"`
}

// CreateLoanRequest represents loan application request body
type CreateLoanRequest struct {
	Amount           float64 `json:"amount"`
	InstallmentCount int     `json:"installment_count"`
}

// validateLoanAmount applies the shared amount/count constraints
func validateLoanAmount(amount float64) string {
	if amount < domain.MinLoanAmount {
		return "Amount must be at least 100.00"
	}
	return ""
}

// Simulate handles a loan simulation
// @Summary Simulate a loan
// @Description Check the credit margin and return the 1-4 installment breakdown
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SimulateRequest true "Simulation data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /loans/simulate [post]
func (h *LoanHandler) Simulate(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("employeeID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req SimulateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if msg := validateLoanAmount(req.Amount); msg != "" {
		return response.BadRequest(c, msg)
	}

	result, err := h.loanService.Simulate(c.Context(), employeeID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			return response.BadRequest(c, "Employee not found")
		case errors.Is(err, services.ErrMarginExceeded):
			// A margin violation during simulation is a plain client
			// error: nothing was attempted against existing state.
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to simulate loan")
		}
	}

	return response.Success(c, "Simulation completed", result)
}

// Create handles a loan application
// @Summary Apply for a loan
// @Description Underwrite a loan: margin check, score consultation, decision, schedule
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateLoanRequest true "Application data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /loans [post]
func (h *LoanHandler) Create(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("employeeID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if msg := validateLoanAmount(req.Amount); msg != "" {
		return response.BadRequest(c, msg)
	}
	if req.InstallmentCount < domain.MinInstallments || req.InstallmentCount > domain.MaxInstallments {
		return response.BadRequest(c, "Installment count must be between 1 and 4")
	}

	loan, err := h.loanService.Create(c.Context(), &services.CreateLoanInput{
		EmployeeID:       employeeID,
		Amount:           req.Amount,
		InstallmentCount: req.InstallmentCount,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			return response.BadRequest(c, "Employee not found")
		case errors.Is(err, services.ErrMarginExceeded):
			// On an actual application the violation conflicts with the
			// applicant's committed payroll state, hence 409 here and
			// 400 on simulation.
			return response.Conflict(c, err.Error())
		case errors.Is(err, services.ErrPaymentNotApproved):
			return response.Conflict(c, "Payment was not approved for this loan")
		case errors.Is(err, services.ErrScheduleWrite):
			return response.InternalServerError(c, "Failed to write the installment schedule")
		default:
			return response.InternalServerError(c, "Failed to create loan")
		}
	}

	message := "Loan approved"
	if loan.Status == models.LoanStatusRejected {
		message = "Loan rejected by credit policy"
	}

	return response.Created(c, message, loan.ToResponse())
}

// List returns the authenticated employee's loans
// @Summary List loans
// @Description List the employee's loans with installments and the employer summary
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("employeeID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	loans, err := h.loanService.ListForEmployee(c.Context(), employeeID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list loans")
	}

	items := make([]*models.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		items = append(items, loan.ToResponse())
	}

	return response.Success(c, "Loans retrieved successfully", fiber.Map{
		"loans": items,
		"total": len(items),
	})
}

package handlers

import (
	"errors"
	"strings"

	"payconsig/internal/core/domain"
	"payconsig/internal/core/services"
	"payconsig/internal/pkg/pagination"
	"payconsig/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CompanyHandler handles employer endpoints
type CompanyHandler struct {
	companyService *services.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CreateCompanyRequest represents company registration request body
type CreateCompanyRequest struct {
	CNPJ               string `json:"cnpj"`
	LegalName          string `json:"legal_name"`
	RepresentativeName string `json:"representative_name"`
	RepresentativeCPF  string `json:"representative_cpf"`
	Email              string `json:"email"`
	Password           string `json:"password"`
}

// UpdateCompanyRequest represents company update request body
type UpdateCompanyRequest struct {
	LegalName          *string `json:"legal_name"`
	RepresentativeName *string `json:"representative_name"`
	RepresentativeCPF  *string `json:"representative_cpf"`
	Email              *string `json:"email"`
}

// Create handles company registration
// @Summary Register company
// @Description Register a new employer
// @Tags Companies
// @Accept json
// @Produce json
// @Param body body CreateCompanyRequest true "Company data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.CNPJ == "" {
		return response.BadRequest(c, "CNPJ is required")
	}
	if req.LegalName == "" {
		return response.BadRequest(c, "Legal name is required")
	}
	if req.RepresentativeName == "" {
		return response.BadRequest(c, "Representative name is required")
	}
	if req.RepresentativeCPF == "" {
		return response.BadRequest(c, "Representative CPF is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if len(req.Password) < 8 {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	input := &services.CreateCompanyInput{
		CNPJ:               strings.TrimSpace(req.CNPJ),
		LegalName:          strings.TrimSpace(req.LegalName),
		RepresentativeName: strings.TrimSpace(req.RepresentativeName),
		RepresentativeCPF:  strings.TrimSpace(req.RepresentativeCPF),
		Email:              strings.TrimSpace(req.Email),
		Password:           req.Password,
	}

	company, err := h.companyService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCNPJ):
			return response.BadRequest(c, "Invalid CNPJ")
		case errors.Is(err, domain.ErrInvalidCPF):
			return response.BadRequest(c, "Invalid representative CPF")
		case errors.Is(err, domain.ErrInvalidEmail):
			return response.BadRequest(c, "Invalid email address")
		case errors.Is(err, services.ErrCNPJTaken):
			return response.Conflict(c, "CNPJ already registered")
		case errors.Is(err, services.ErrEmailTaken):
			return response.Conflict(c, "Email already registered")
		default:
			return response.InternalServerError(c, "Failed to register company")
		}
	}

	return response.Created(c, "Company registered successfully", company)
}

// GetByID returns a single company
// @Summary Get company
// @Description Get an employer by ID
// @Tags Companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	company, err := h.companyService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			return response.NotFound(c, "Company not found")
		}
		return response.InternalServerError(c, "Failed to get company")
	}

	return response.Success(c, "Company retrieved successfully", company)
}

// List returns a page of companies
// @Summary List companies
// @Description List employers with pagination
// @Tags Companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	companies, total, err := h.companyService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list companies")
	}

	return response.Success(c, "Companies retrieved successfully",
		pagination.NewResponse(companies, params, total))
}

// Update handles company update
// @Summary Update company
// @Description Apply a partial update to an employer
// @Tags Companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param body body UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /companies/{id} [patch]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var req UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateCompanyInput{
		LegalName:          req.LegalName,
		RepresentativeName: req.RepresentativeName,
		RepresentativeCPF:  req.RepresentativeCPF,
		Email:              req.Email,
	}

	company, err := h.companyService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCompanyNotFound):
			return response.NotFound(c, "Company not found")
		case errors.Is(err, domain.ErrInvalidCPF):
			return response.BadRequest(c, "Invalid representative CPF")
		case errors.Is(err, domain.ErrInvalidEmail):
			return response.BadRequest(c, "Invalid email address")
		case errors.Is(err, services.ErrEmailTaken):
			return response.Conflict(c, "Email already registered")
		default:
			return response.InternalServerError(c, "Failed to update company")
		}
	}

	return response.Success(c, "Company updated successfully", company)
}

// Delete handles company deletion
// @Summary Delete company
// @Description Soft-delete an employer
// @Tags Companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.companyService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			return response.NotFound(c, "Company not found")
		}
		return response.InternalServerError(c, "Failed to delete company")
	}

	return response.Success(c, "Company deleted successfully", nil)
}

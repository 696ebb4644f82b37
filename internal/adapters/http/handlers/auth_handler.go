package handlers

import (
	"errors"
	"strings"
	"time"

	"payconsig/internal/config"
	"payconsig/internal/core/domain"
	"payconsig/internal/core/services"
	"payconsig/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// SignupRequest represents employee registration request body
type SignupRequest struct {
	Name      string  `json:"name"`
	CPF       string  `json:"cpf"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Salary    float64 `json:"salary"`
	CompanyID string  `json:"company_id"`
}

// SigninRequest represents login request body
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles employee registration
// @Summary Register new employee
// @Description Register a new loan applicant under an employer
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if req.CPF == "" {
		return response.BadRequest(c, "CPF is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
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

	input := &services.SignupInput{
		Name:      strings.TrimSpace(req.Name),
		CPF:       strings.TrimSpace(req.CPF),
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		Salary:    req.Salary,
		CompanyID: strings.TrimSpace(req.CompanyID),
	}

	result, err := h.authService.Signup(c.Context(), input)
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
			return response.InternalServerError(c, "Failed to register employee")
		}
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Created(c, "Employee registered successfully", fiber.Map{
		"access_token": result.AccessToken,
		"employee":     result.Employee,
	})
}

// Signin handles employee login
// @Summary Sign in
// @Description Authenticate an employee and return tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SigninRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	input := &services.SigninInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	result, err := h.authService.Signin(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid email or password")
		default:
			return response.InternalServerError(c, "Failed to sign in")
		}
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Success(c, "Signed in successfully", fiber.Map{
		"access_token": result.AccessToken,
		"employee":     result.Employee,
	})
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Refresh access token using refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		return response.Unauthorized(c, "Refresh token not found")
	}

	result, err := h.authService.RefreshToken(c.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTokenExpired):
			h.clearAuthCookies(c)
			return response.Unauthorized(c, "Refresh token expired, please sign in again")
		case errors.Is(err, services.ErrTokenRevoked):
			h.clearAuthCookies(c)
			return response.Unauthorized(c, "Refresh token revoked, please sign in again")
		case errors.Is(err, services.ErrInvalidToken):
			h.clearAuthCookies(c)
			return response.Unauthorized(c, "Invalid refresh token")
		default:
			return response.InternalServerError(c, "Failed to refresh token")
		}
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Success(c, "Token refreshed successfully", fiber.Map{
		"access_token": result.AccessToken,
		"employee":     result.Employee,
	})
}

// Signout handles employee logout
// @Summary Sign out
// @Description Sign out and revoke the refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/signout [post]
func (h *AuthHandler) Signout(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken != "" {
		_ = h.authService.Signout(c.Context(), refreshToken)
	}

	h.clearAuthCookies(c)

	return response.Success(c, "Signed out successfully", nil)
}

// SignoutAll handles logout from all devices
// @Summary Sign out from all devices
// @Description Revoke all refresh tokens for the employee
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/signout-all [post]
func (h *AuthHandler) SignoutAll(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("employeeID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.authService.SignoutAll(c.Context(), employeeID); err != nil {
		return response.InternalServerError(c, "Failed to sign out from all devices")
	}

	h.clearAuthCookies(c)

	return response.Success(c, "Signed out from all devices", nil)
}

// Me returns the current employee info
// @Summary Get current employee
// @Description Get the currently authenticated employee's information
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("employeeID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	employee, err := h.authService.GetEmployeeByID(c.Context(), employeeID)
	if err != nil {
		return response.NotFound(c, "Employee not found")
	}

	return response.Success(c, "Employee retrieved successfully", fiber.Map{
		"employee": employee.ToResponse(),
	})
}

// setAuthCookies sets access and refresh token cookies
func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		MaxAge:   h.cfg.JWT.AccessTokenMins * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   h.cfg.JWT.RefreshTokenDays * 24 * 60 * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearAuthCookies clears auth cookies
func (h *AuthHandler) clearAuthCookies(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

package services

import (
	"context"
	"errors"
	"log"

	"payconsig/internal/adapters/persistence/models"
	"payconsig/internal/adapters/persistence/repositories"
	"payconsig/internal/config"
	"payconsig/internal/core/domain"
	"payconsig/internal/pkg/jwt"
	"payconsig/internal/pkg/password"
	"payconsig/internal/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCPFTaken           = domain.ErrCPFTaken
	ErrEmailTaken         = domain.ErrEmailTaken
	ErrCompanyNotFound    = domain.ErrCompanyNotFound
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
)

// AuthService handles employee authentication
type AuthService struct {
	employeeRepo     repositories.EmployeeRepository
	companyRepo      repositories.CompanyRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	cfg              *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	employeeRepo repositories.EmployeeRepository,
	companyRepo repositories.CompanyRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		employeeRepo:     employeeRepo,
		companyRepo:      companyRepo,
		refreshTokenRepo: refreshTokenRepo,
		cfg:              cfg,
	}
}

// SignupInput represents employee registration input
type SignupInput struct {
	Name      string  `json:"name" validate:"required,min=3,max=100"`
	CPF       string  `json:"cpf" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	Salary    float64 `json:"salary" validate:"required,gt=0"`
	CompanyID string  `json:"company_id" validate:"required"`
}

// SigninInput represents login input
type SigninInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Employee     *models.EmployeeResponse `json:"employee"`
	AccessToken  string                   `json:"access_token"`
	RefreshToken string                   `json:"refresh_token"`
}

// Signup registers a new employee
func (s *AuthService) Signup(ctx context.Context, input *SignupInput) (*AuthResponse, error) {
	// 1. Validate document and email formats
	cpf := validator.NormalizeCPF(input.CPF)
	if !validator.IsValidCPF(cpf) {
		return nil, domain.ErrInvalidCPF
	}
	if !validator.IsValidEmail(input.Email) {
		return nil, domain.ErrInvalidEmail
	}
	if !password.ValidatePassword(input.Password) {
		return nil, domain.ErrInvalidInput
	}

	// 2. Employer must exist
	if _, err := s.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	// 3. Check CPF uniqueness
	exists, err := s.employeeRepo.ExistsByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCPFTaken
	}

	// 4. Check email uniqueness
	exists, err = s.employeeRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	// 5. Hash password
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 6. Create employee
	employee := &models.Employee{
		Name:      input.Name,
		CPF:       cpf,
		Email:     input.Email,
		Password:  hashedPassword,
		Salary:    input.Salary,
		CompanyID: input.CompanyID,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	// 7. Generate and store tokens
	tokens, err := s.issueTokens(ctx, employee)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Employee registered: %s", employee.Email)

	return &AuthResponse{
		Employee:     employee.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Signin authenticates an employee by email and password
func (s *AuthService) Signin(ctx context.Context, input *SigninInput) (*AuthResponse, error) {
	employee, err := s.employeeRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, employee.Password) {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, employee)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Employee signed in: %s", employee.Email)

	return &AuthResponse{
		Employee:     employee.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// RefreshToken rotates the refresh token and issues a new pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	// 1. Validate refresh token JWT
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	// 2. Find the stored token by hash
	tokenHash := password.HashToken(refreshToken)
	storedToken, err := s.refreshTokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if storedToken.IsRevoked() {
		return nil, ErrTokenRevoked
	}
	if storedToken.IsExpired() {
		return nil, ErrTokenExpired
	}

	// 3. Get the employee
	employee, err := s.employeeRepo.GetByID(ctx, claims.EmployeeID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	// 4. Revoke the old token (rotation)
	if err := s.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash); err != nil {
		return nil, err
	}

	// 5. Issue a new pair
	tokens, err := s.issueTokens(ctx, employee)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Token refreshed for employee: %s", employee.Email)

	return &AuthResponse{
		Employee:     employee.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Signout revokes the refresh token
func (s *AuthService) Signout(ctx context.Context, refreshToken string) error {
	tokenHash := password.HashToken(refreshToken)

	if err := s.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash); err != nil {
		return err
	}

	log.Printf("✅ Employee signed out")
	return nil
}

// SignoutAll revokes all refresh tokens for an employee
func (s *AuthService) SignoutAll(ctx context.Context, employeeID string) error {
	if err := s.refreshTokenRepo.RevokeAllByEmployeeID(ctx, employeeID); err != nil {
		return err
	}

	log.Printf("✅ All sessions revoked for employee: %s", employeeID)
	return nil
}

// ValidateAccessToken validates an access token
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}

// GetEmployeeByID gets an employee by ID
func (s *AuthService) GetEmployeeByID(ctx context.Context, employeeID string) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

// issueTokens generates an access/refresh pair and stores the refresh
// token hash
func (s *AuthService) issueTokens(ctx context.Context, employee *models.Employee) (*domain.TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		employee.ID,
		employee.Email,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.New().String()

	refreshToken, err := jwt.GenerateRefreshToken(
		employee.ID,
		tokenID,
		s.cfg.JWT.RefreshSecret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	token := &models.RefreshToken{
		EmployeeID: employee.ID,
		TokenHash:  password.HashToken(refreshToken),
		ExpiresAt:  jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	if err := s.refreshTokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

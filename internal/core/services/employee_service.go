package services

import (
	"context"
	"errors"
	"log"

	"payconsig/internal/adapters/persistence/models"
	"payconsig/internal/adapters/persistence/repositories"
	"payconsig/internal/core/domain"
	"payconsig/internal/pkg/password"
	"payconsig/internal/pkg/validator"

	"gorm.io/gorm"
)

// EmployeeService handles applicant maintenance. Registration itself
// goes through the auth service; this service covers the back-office
// operations on existing applicants.
type EmployeeService struct {
	employeeRepo repositories.EmployeeRepository
	companyRepo  repositories.CompanyRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	employeeRepo repositories.EmployeeRepository,
	companyRepo repositories.CompanyRepository,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
	}
}

// CreateEmployeeInput represents back-office employee creation input
type CreateEmployeeInput struct {
	Name      string  `json:"name" validate:"required,min=3,max=100"`
	CPF       string  `json:"cpf" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	Salary    float64 `json:"salary" validate:"required,gt=0"`
	CompanyID string  `json:"company_id" validate:"required"`
}

// UpdateEmployeeInput represents employee update input. Nil fields are
// left unchanged; the CPF is immutable.
type UpdateEmployeeInput struct {
	Name      *string  `json:"name"`
	Email     *string  `json:"email"`
	Salary    *float64 `json:"salary"`
	CompanyID *string  `json:"company_id"`
}

// Create registers an applicant on behalf of their employer. The
// self-service path is the auth signup; this one issues no tokens.
func (s *EmployeeService) Create(ctx context.Context, input *CreateEmployeeInput) (*models.Employee, error) {
	cpf := validator.NormalizeCPF(input.CPF)
	if !validator.IsValidCPF(cpf) {
		return nil, domain.ErrInvalidCPF
	}
	if !validator.IsValidEmail(input.Email) {
		return nil, domain.ErrInvalidEmail
	}
	if input.Salary <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !password.ValidatePassword(input.Password) {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	exists, err := s.employeeRepo.ExistsByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCPFTaken
	}

	exists, err = s.employeeRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

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

	log.Printf("✅ Employee created: %s", employee.ID)
	return employee, nil
}

// GetByID returns a single applicant with the employer preloaded
func (s *EmployeeService) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

// List returns a page of applicants
func (s *EmployeeService) List(ctx context.Context, offset, limit int) ([]*models.Employee, int64, error) {
	return s.employeeRepo.List(ctx, offset, limit)
}

// Update applies a partial update to an applicant. A salary change
// affects the credit margin of future applications only; existing
// loans keep the decision made at underwriting time.
func (s *EmployeeService) Update(ctx context.Context, id string, input *UpdateEmployeeInput) (*models.Employee, error) {
	employee, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Email != nil {
		if !validator.IsValidEmail(*input.Email) {
			return nil, domain.ErrInvalidEmail
		}
		if *input.Email != employee.Email {
			exists, err := s.employeeRepo.ExistsByEmail(ctx, *input.Email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrEmailTaken
			}
		}
		employee.Email = *input.Email
	}
	if input.Salary != nil {
		if *input.Salary <= 0 {
			return nil, domain.ErrInvalidInput
		}
		employee.Salary = *input.Salary
	}
	if input.CompanyID != nil {
		if _, err := s.companyRepo.GetByID(ctx, *input.CompanyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, err
		}
		employee.CompanyID = *input.CompanyID
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	log.Printf("✅ Employee updated: %s", employee.ID)
	return employee, nil
}

// Delete soft-deletes an applicant
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Employee deleted: %s", id)
	return nil
}

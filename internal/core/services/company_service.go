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

// Company errors
var (
	ErrCNPJTaken   = domain.ErrCNPJTaken
	ErrInvalidCNPJ = domain.ErrInvalidCNPJ
)

// CompanyService handles employer onboarding and maintenance
type CompanyService struct {
	companyRepo repositories.CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo repositories.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// CreateCompanyInput represents company registration input
type CreateCompanyInput struct {
	CNPJ               string `json:"cnpj" validate:"required"`
	LegalName          string `json:"legal_name" validate:"required,min=3,max=150"`
	RepresentativeName string `json:"representative_name" validate:"required,min=3,max=100"`
	RepresentativeCPF  string `json:"representative_cpf" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=8"`
}

// UpdateCompanyInput represents company update input. Nil fields are
// left unchanged; the CNPJ is immutable.
type UpdateCompanyInput struct {
	LegalName          *string `json:"legal_name"`
	RepresentativeName *string `json:"representative_name"`
	RepresentativeCPF  *string `json:"representative_cpf"`
	Email              *string `json:"email"`
}

// Create registers a new employer
func (s *CompanyService) Create(ctx context.Context, input *CreateCompanyInput) (*models.Company, error) {
	// 1. Validate documents
	cnpj := validator.NormalizeCNPJ(input.CNPJ)
	if !validator.IsValidCNPJ(cnpj) {
		return nil, ErrInvalidCNPJ
	}
	repCPF := validator.NormalizeCPF(input.RepresentativeCPF)
	if !validator.IsValidCPF(repCPF) {
		return nil, domain.ErrInvalidCPF
	}
	if !validator.IsValidEmail(input.Email) {
		return nil, domain.ErrInvalidEmail
	}
	if !password.ValidatePassword(input.Password) {
		return nil, domain.ErrInvalidInput
	}

	// 2. Check CNPJ uniqueness
	exists, err := s.companyRepo.ExistsByCNPJ(ctx, cnpj)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCNPJTaken
	}

	// 3. Check email uniqueness
	exists, err = s.companyRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	// 4. Hash password
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	company := &models.Company{
		CNPJ:               cnpj,
		LegalName:          input.LegalName,
		RepresentativeName: input.RepresentativeName,
		RepresentativeCPF:  repCPF,
		Email:              input.Email,
		Password:           hashedPassword,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	log.Printf("✅ Company registered: %s (CNPJ: %s)", company.LegalName, company.CNPJ)
	return company, nil
}

// GetByID returns a single employer
func (s *CompanyService) GetByID(ctx context.Context, id string) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

// List returns a page of employers
func (s *CompanyService) List(ctx context.Context, offset, limit int) ([]*models.Company, int64, error) {
	return s.companyRepo.List(ctx, offset, limit)
}

// Update applies a partial update to an employer
func (s *CompanyService) Update(ctx context.Context, id string, input *UpdateCompanyInput) (*models.Company, error) {
	company, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.LegalName != nil {
		company.LegalName = *input.LegalName
	}
	if input.RepresentativeName != nil {
		company.RepresentativeName = *input.RepresentativeName
	}
	if input.RepresentativeCPF != nil {
		repCPF := validator.NormalizeCPF(*input.RepresentativeCPF)
		if !validator.IsValidCPF(repCPF) {
			return nil, domain.ErrInvalidCPF
		}
		company.RepresentativeCPF = repCPF
	}
	if input.Email != nil {
		if !validator.IsValidEmail(*input.Email) {
			return nil, domain.ErrInvalidEmail
		}
		if *input.Email != company.Email {
			exists, err := s.companyRepo.ExistsByEmail(ctx, *input.Email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrEmailTaken
			}
		}
		company.Email = *input.Email
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	log.Printf("✅ Company updated: %s", company.ID)
	return company, nil
}

// Delete soft-deletes an employer
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Company deleted: %s", id)
	return nil
}

package repositories

import (
	"context"

	"payconsig/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// companyRepository handles company data access
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// Create creates a new company
func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// GetByID gets a company by ID
func (r *companyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Update updates a company
func (r *companyRepository) Update(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// Delete soft deletes a company
func (r *companyRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Company{}, "id = ?", id).Error
}

// List lists companies with their employees, paginated
func (r *companyRepository) List(ctx context.Context, offset, limit int) ([]*models.Company, int64, error) {
	var companies []*models.Company
	var total int64

	r.db.WithContext(ctx).Model(&models.Company{}).Count(&total)

	err := r.db.WithContext(ctx).
		Preload("Employees").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&companies).Error

	return companies, total, err
}

// ExistsByCNPJ checks if a company with the CNPJ exists
func (r *companyRepository) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Company{}).Where("cnpj = ?", cnpj).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks if a company with the email exists
func (r *companyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Company{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

package repositories

import (
	"context"
	"time"

	"payconsig/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// installmentRepository handles installment data access
type installmentRepository struct {
	db *gorm.DB
}

// NewInstallmentRepository creates a new installment repository
func NewInstallmentRepository(db *gorm.DB) InstallmentRepository {
	return &installmentRepository{db: db}
}

// Create creates a single installment record
func (r *installmentRepository) Create(ctx context.Context, installment *models.Installment) error {
	return r.db.WithContext(ctx).Create(installment).Error
}

// ListByLoan gets all installments of a loan, ordered by number
func (r *installmentRepository) ListByLoan(ctx context.Context, loanID string) ([]*models.Installment, error) {
	var installments []*models.Installment
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("number ASC").
		Find(&installments).Error
	return installments, err
}

// CountOverdue counts installments past their due date
func (r *installmentRepository) CountOverdue(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Installment{}).
		Where("due_date < ?", time.Now()).
		Count(&count).Error
	return count, err
}

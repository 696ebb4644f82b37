package repositories

import (
	"context"

	"payconsig/internal/adapters/persistence/models"
)

// CompanyRepository defines company repository interface
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id string) (*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]*models.Company, int64, error)
	ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// EmployeeRepository defines employee repository interface
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]*models.Employee, int64, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// LoanRepository defines loan repository interface
type LoanRepository interface {
	Create(ctx context.Context, loan *models.Loan) error
	GetByID(ctx context.Context, id string) (*models.Loan, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*models.Loan, error)
	List(ctx context.Context, offset, limit int) ([]*models.Loan, int64, error)
}

// InstallmentRepository defines installment repository interface.
// Schedule rows are written one at a time, sequentially.
type InstallmentRepository interface {
	Create(ctx context.Context, installment *models.Installment) error
	ListByLoan(ctx context.Context, loanID string) ([]*models.Installment, error)
	CountOverdue(ctx context.Context) (int64, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByEmployeeID(ctx context.Context, employeeID string) error
	DeleteExpired(ctx context.Context) error
}

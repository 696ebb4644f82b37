package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"payconsig/internal/adapters/persistence/models"
	"payconsig/internal/adapters/persistence/repositories"
	"payconsig/internal/core/domain"

	"gorm.io/gorm"
)

// Loan service errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrMarginExceeded     = domain.ErrMarginExceeded
	ErrPaymentNotApproved = domain.ErrPaymentNotApproved
	ErrScheduleWrite      = domain.ErrScheduleWrite
)

// LoanService is the underwriting engine. It validates the credit
// margin, obtains a score, applies the approval rule, persists the
// decision and, for approved loans, generates the installment schedule
// and runs the payment confirmation.
type LoanService struct {
	employeeRepo    repositories.EmployeeRepository
	loanRepo        repositories.LoanRepository
	installmentRepo repositories.InstallmentRepository
	scores          ScoreProvider
	payments        PaymentSimulator
}

// NewLoanService creates a new loan service
func NewLoanService(
	employeeRepo repositories.EmployeeRepository,
	loanRepo repositories.LoanRepository,
	installmentRepo repositories.InstallmentRepository,
	scores ScoreProvider,
	payments PaymentSimulator,
) *LoanService {
	return &LoanService{
		employeeRepo:    employeeRepo,
		loanRepo:        loanRepo,
		installmentRepo: installmentRepo,
		scores:          scores,
		payments:        payments,
	}
}

// SimulationOutput represents a simulation result
type SimulationOutput struct {
	RequestedAmount float64                    `json:"requested_amount"`
	CreditMargin    float64                    `json:"credit_margin"`
	Options         []domain.InstallmentOption `json:"options"`
}

// Simulate checks the credit margin and returns the 1..4 installment
// breakdown. No side effects.
func (s *LoanService) Simulate(ctx context.Context, employeeID string, amount float64) (*SimulationOutput, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	margin := domain.CreditMargin(employee.Salary)
	if amount > margin {
		return nil, fmt.Errorf("requested amount (%.2f) exceeds the available credit margin (%.2f): %w",
			amount, margin, ErrMarginExceeded)
	}

	return &SimulationOutput{
		RequestedAmount: amount,
		CreditMargin:    margin,
		Options:         domain.InstallmentOptions(amount),
	}, nil
}

// CreateLoanInput represents create loan input
type CreateLoanInput struct {
	EmployeeID       string
	Amount           float64
	InstallmentCount int
}

// Create underwrites and persists a loan application.
//
// The decision is made synchronously: margin check, score fetch (with
// salary-band fallback when the scoring service is unavailable),
// approval rule, persist. Only approved loans get an installment
// schedule and a payment confirmation. The loan record is committed
// before the confirmation runs, so a payment rejection propagates as
// ErrPaymentNotApproved without rolling the loan back.
func (s *LoanService) Create(ctx context.Context, input *CreateLoanInput) (*models.Loan, error) {
	employee, err := s.employeeRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	margin := domain.CreditMargin(employee.Salary)
	if input.Amount > margin {
		return nil, fmt.Errorf("requested amount (%.2f) exceeds the available credit margin (%.2f): %w",
			input.Amount, margin, ErrMarginExceeded)
	}

	score := s.fetchScore(ctx, employee)

	status := models.LoanStatusApproved
	if score < domain.RequiredScore(employee.Salary) {
		status = models.LoanStatusRejected
	}

	loan := &models.Loan{
		EmployeeID:       employee.ID,
		Amount:           input.Amount,
		InstallmentCount: input.InstallmentCount,
		ScoreUsed:        score,
		Status:           status,
	}

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	if loan.Status == models.LoanStatusApproved {
		if err := s.generateSchedule(ctx, loan); err != nil {
			return nil, err
		}

		if err := s.confirmPayment(ctx, loan); err != nil {
			return nil, err
		}
	}

	log.Printf("✅ Loan %s underwritten: %s (score %d)", loan.ID, loan.Status, loan.ScoreUsed)
	return loan, nil
}

// ListForEmployee returns an employee's loans with nested installments
// and the employer summary
func (s *LoanService) ListForEmployee(ctx context.Context, employeeID string) ([]*models.Loan, error) {
	return s.loanRepo.ListByEmployee(ctx, employeeID)
}

// fetchScore asks the scoring service for the applicant's score.
// When the service is unavailable the engine falls back to the
// salary-band minimum for the applicant's current salary, so the
// decision always completes deterministically.
func (s *LoanService) fetchScore(ctx context.Context, employee *models.Employee) int {
	score, err := s.scores.Fetch(ctx, employee.ID)
	if err != nil {
		log.Printf("⚠️ Score service unavailable, using salary-band fallback: %v", err)
		return domain.RequiredScore(employee.Salary)
	}
	return score
}

// generateSchedule persists one installment per month, numbered
// 1..count, due dates starting next month. The per-installment value is
// the full-precision division of the principal, not the rounded figure
// shown during simulation. Writes are sequential with no compensation;
// a partial failure is surfaced as ErrScheduleWrite.
func (s *LoanService) generateSchedule(ctx context.Context, loan *models.Loan) error {
	value := loan.Amount / float64(loan.InstallmentCount)
	now := time.Now()

	for i := 1; i <= loan.InstallmentCount; i++ {
		installment := &models.Installment{
			LoanID:  loan.ID,
			Number:  i,
			Value:   value,
			DueDate: now.AddDate(0, i, 0),
		}

		if err := s.installmentRepo.Create(ctx, installment); err != nil {
			log.Printf("❌ Schedule write failed for loan %s at installment %d/%d: %v",
				loan.ID, i, loan.InstallmentCount, err)
			return fmt.Errorf("%w: installment %d of %d", ErrScheduleWrite, i, loan.InstallmentCount)
		}
	}

	return nil
}

// confirmPayment runs the best-effort payment confirmation on an
// already-committed loan. Transport failures are logged and swallowed;
// an explicit non-approved status is a real business signal and
// propagates as ErrPaymentNotApproved.
func (s *LoanService) confirmPayment(ctx context.Context, loan *models.Loan) error {
	status, err := s.payments.Check(ctx, loan.ID)
	if err != nil {
		log.Printf("⚠️ Payment confirmation unavailable for loan %s: %v", loan.ID, err)
		return nil
	}

	if status != domain.PaymentStatusApproved {
		return ErrPaymentNotApproved
	}

	return nil
}

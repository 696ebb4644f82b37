package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"payconsig/internal/adapters/persistence/models"
	"payconsig/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Mocks
// ============================================================

type mockEmployeeRepo struct {
	employee *models.Employee
}

func (m *mockEmployeeRepo) Create(ctx context.Context, e *models.Employee) error { return nil }
func (m *mockEmployeeRepo) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	if m.employee == nil || m.employee.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return m.employee, nil
}
func (m *mockEmployeeRepo) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockEmployeeRepo) Update(ctx context.Context, e *models.Employee) error { return nil }
func (m *mockEmployeeRepo) Delete(ctx context.Context, id string) error          { return nil }
func (m *mockEmployeeRepo) List(ctx context.Context, offset, limit int) ([]*models.Employee, int64, error) {
	return nil, 0, nil
}
func (m *mockEmployeeRepo) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	return false, nil
}
func (m *mockEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type mockLoanRepo struct {
	created *models.Loan
}

func (m *mockLoanRepo) Create(ctx context.Context, loan *models.Loan) error {
	loan.ID = "loan-1"
	loan.CreatedAt = time.Now()
	m.created = loan
	return nil
}
func (m *mockLoanRepo) GetByID(ctx context.Context, id string) (*models.Loan, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockLoanRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*models.Loan, error) {
	return nil, nil
}
func (m *mockLoanRepo) List(ctx context.Context, offset, limit int) ([]*models.Loan, int64, error) {
	return nil, 0, nil
}

type mockInstallmentRepo struct {
	created   []*models.Installment
	failAfter int // fail on the Nth create (0 = never)
}

func (m *mockInstallmentRepo) Create(ctx context.Context, inst *models.Installment) error {
	if m.failAfter > 0 && len(m.created)+1 >= m.failAfter {
		return errors.New("write failed")
	}
	m.created = append(m.created, inst)
	return nil
}
func (m *mockInstallmentRepo) ListByLoan(ctx context.Context, loanID string) ([]*models.Installment, error) {
	return m.created, nil
}
func (m *mockInstallmentRepo) CountOverdue(ctx context.Context) (int64, error) { return 0, nil }

type mockScoreProvider struct {
	score  int
	err    error
	called bool
}

func (m *mockScoreProvider) Fetch(ctx context.Context, employeeID string) (int, error) {
	m.called = true
	return m.score, m.err
}

type mockPaymentSimulator struct {
	status string
	err    error
	called bool
}

func (m *mockPaymentSimulator) Check(ctx context.Context, loanID string) (string, error) {
	m.called = true
	return m.status, m.err
}

func testEmployee(salary float64) *models.Employee {
	return &models.Employee{
		ID:        "emp-1",
		Name:      "Ana Souza",
		Salary:    salary,
		CompanyID: "comp-1",
	}
}

func newTestService(salary float64, scores *mockScoreProvider, payments *mockPaymentSimulator) (*LoanService, *mockLoanRepo, *mockInstallmentRepo) {
	loanRepo := &mockLoanRepo{}
	installmentRepo := &mockInstallmentRepo{}
	svc := NewLoanService(
		&mockEmployeeRepo{employee: testEmployee(salary)},
		loanRepo,
		installmentRepo,
		scores,
		payments,
	)
	return svc, loanRepo, installmentRepo
}

// ============================================================
// Simulate
// ============================================================

func TestSimulate(t *testing.T) {
	svc, _, _ := newTestService(5000, &mockScoreProvider{}, &mockPaymentSimulator{})

	out, err := svc.Simulate(context.Background(), "emp-1", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.CreditMargin != 1750 {
		t.Errorf("expected margin 1750, got %.2f", out.CreditMargin)
	}
	if out.RequestedAmount != 1000 {
		t.Errorf("expected requested amount 1000, got %.2f", out.RequestedAmount)
	}

	want := []domain.InstallmentOption{
		{Count: 1, Value: 1000},
		{Count: 2, Value: 500},
		{Count: 3, Value: 333.33},
		{Count: 4, Value: 250},
	}
	if len(out.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(out.Options))
	}
	for i, w := range want {
		if out.Options[i] != w {
			t.Errorf("option[%d] = %+v, want %+v", i, out.Options[i], w)
		}
	}
}

func TestSimulate_MarginExceeded(t *testing.T) {
	svc, loanRepo, installmentRepo := newTestService(5000, &mockScoreProvider{}, &mockPaymentSimulator{})

	_, err := svc.Simulate(context.Background(), "emp-1", 2000)
	if !errors.Is(err, ErrMarginExceeded) {
		t.Fatalf("expected ErrMarginExceeded, got %v", err)
	}

	// message cites both values with 2 decimals
	if !strings.Contains(err.Error(), "2000.00") || !strings.Contains(err.Error(), "1750.00") {
		t.Errorf("expected message to cite 2000.00 and 1750.00, got %q", err.Error())
	}

	if loanRepo.created != nil || len(installmentRepo.created) != 0 {
		t.Error("simulate must have no side effects")
	}
}

func TestSimulate_EmployeeNotFound(t *testing.T) {
	svc, _, _ := newTestService(5000, &mockScoreProvider{}, &mockPaymentSimulator{})

	if _, err := svc.Simulate(context.Background(), "missing", 100); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

// ============================================================
// Create
// ============================================================

func TestCreate_Approved(t *testing.T) {
	// salary 1500 -> required score 400; score 450 -> APPROVED
	scores := &mockScoreProvider{score: 450}
	payments := &mockPaymentSimulator{status: "approved"}
	svc, loanRepo, installmentRepo := newTestService(1500, scores, payments)

	loan, err := svc.Create(context.Background(), &CreateLoanInput{
		EmployeeID:       "emp-1",
		Amount:           500,
		InstallmentCount: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loan.Status != models.LoanStatusApproved {
		t.Errorf("expected APPROVED, got %s", loan.Status)
	}
	if loan.ScoreUsed != 450 {
		t.Errorf("expected score 450, got %d", loan.ScoreUsed)
	}
	if loanRepo.created == nil {
		t.Fatal("expected loan to be persisted")
	}
	if !payments.called {
		t.Error("expected payment confirmation to run")
	}

	if len(installmentRepo.created) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(installmentRepo.created))
	}

	sum := 0.0
	for i, inst := range installmentRepo.created {
		if inst.Number != i+1 {
			t.Errorf("installment %d has number %d", i, inst.Number)
		}
		// full-precision division, not the rounded simulation value
		if inst.Value != 500.0/3.0 {
			t.Errorf("installment value = %v, want %v", inst.Value, 500.0/3.0)
		}
		sum += inst.Value
	}
	if math.Abs(sum-500) > 1e-9 {
		t.Errorf("installments sum to %v, want 500", sum)
	}
}

func TestCreate_InstallmentDueDatesMonthly(t *testing.T) {
	scores := &mockScoreProvider{score: 800}
	payments := &mockPaymentSimulator{status: "approved"}
	svc, _, installmentRepo := newTestService(5000, scores, payments)

	_, err := svc.Create(context.Background(), &CreateLoanInput{
		EmployeeID:       "emp-1",
		Amount:           1000,
		InstallmentCount: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now()
	for i, inst := range installmentRepo.created {
		want := now.AddDate(0, i+1, 0)
		if inst.DueDate.Format("2006-01-02") != want.Format("2006-01-02") {
			t.Errorf("installment %d due %s, want %s",
				i+1, inst.DueDate.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	}
}

func TestCreate_Rejected(t *testing.T) {
	// salary 1500 -> required score 400; score 300 -> REJECTED
	scores := &mockScoreProvider{score: 300}
	payments := &mockPaymentSimulator{status: "approved"}
	svc, loanRepo, installmentRepo := newTestService(1500, scores, payments)

	loan, err := svc.Create(context.Background(), &CreateLoanInput{
		EmployeeID:       "emp-1",
		Amount:           500,
		InstallmentCount: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loan.Status != models.LoanStatusRejected {
		t.Errorf("expected REJECTED, got %s", loan.Status)
	}
	if loanRepo.created == nil {
		t.Error("rejected loans are still persisted")
	}
	if len(installmentRepo.created) != 0 {
		t.Errorf("rejected loan must have zero installments, got %d", len(installmentRepo.created))
	}
	if payments.called {
		t.Error("payment confirmation must not run for rejected loans")
	}
}

func TestCreate_MarginExceededIsConflictSentinel(t *testing.T) {
	scores := &mockScoreProvider{score: 800}
	svc, loanRepo, _ := newTestService(5000, scores, &mockPaymentSimulator{status: "approved"})

	_, err := svc.Create(context.Background(), &CreateLoanInput{
		EmployeeID:       "emp-1",
		Amount:           2000,
		InstallmentCount: 2,
	})
	if !errors.Is(err, ErrMarginExceeded) {
		t.Fatalf("expected ErrMarginExceeded, got %v", err)
	}
	if loanRepo.created != nil {
		t.Error("margin violation must abort before persisting")
	}
	if scores.called {
		t.Error("score must not be fetched when the margin check fails")
	}
}

func TestCreate_ScoreServiceDown_FallsBackToSalaryBand(t *testing.T) {
	scores := &mockScoreProvider{err: domain.ErrScoreUnavailable}
	payments := &mockPaymentSimulator{status: "approved"}
	// salary 5000 -> fallback score 600, required 600 -> APPROVED
	svc, _, installmentRepo := newTestService(5000, scores, payments)

	loan, err := svc.Create(context.Background(), &CreateLoanInput{
		EmployeeID:       "emp-1",
		Amount:           1000,
		InstallmentCount: 2,
	})
	if err != nil {
		t.Fatalf("gateway failure must not surface: %v", err)
	}

	if loan.ScoreUsed != domain.RequiredScore(5000) {
		t.Errorf("expected fallback score %d, got %d", domain.RequiredScore(5000), loan.ScoreUsed)
	}
	if loan.Status != models.LoanStatusApproved {
		t.Errorf("fallback score equals required score, expected APPROVED, got %s", loan.Status)
	}
	if len(installmentRepo.created) != 2 {
		t.Errorf("expected 2 installments, got %d", len(installmentRepo.created))
	}
}

func TestCreate_PaymentRejected_PropagatesConflict(t *testing.T) {
	scores := &mockScoreProvider{score: 800}
	payments := &mockPaymentSimulator{status: "rejected"}
	svc, loanRepo, installmentRepo := newTestService(5000, scores, payments)

	_, err := svc.Create(context.Background(), &CreateLoanInput{
		EmployeeID:       "emp-1",
		Amount:           1000,
		InstallmentCount: 2,
	})
	if !errors.Is(err, ErrPaymentNotApproved) {
		t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
	}

	// the loan was committed before confirmation; no rollback
	if loanRepo.created == nil {
		t.Error("loan must remain persisted after a payment rejection")
	}
	if len(installmentRepo.created) != 2 {
		t.Error("schedule must remain after a payment rejection")
	}
}

func TestCreate_PaymentServiceDown_IsSwallowed(t *testing.T) {
	scores := &mockScoreProvider{score: 800}
	payments := &mockPaymentSimulator{err: errors.New("connection refused")}
	svc, _, _ := newTestService(5000, scores, payments)

	loan, err := svc.Create(context.Background(), &CreateLoanInput{
		EmployeeID:       "emp-1",
		Amount:           1000,
		InstallmentCount: 2,
	})
	if err != nil {
		t.Fatalf("payment transport failure must not surface: %v", err)
	}
	if loan == nil || loan.Status != models.LoanStatusApproved {
		t.Error("loan must be returned approved despite the payment outage")
	}
}

func TestCreate_ScheduleWriteFailure(t *testing.T) {
	scores := &mockScoreProvider{score: 800}
	payments := &mockPaymentSimulator{status: "approved"}
	loanRepo := &mockLoanRepo{}
	installmentRepo := &mockInstallmentRepo{failAfter: 2}
	svc := NewLoanService(
		&mockEmployeeRepo{employee: testEmployee(5000)},
		loanRepo,
		installmentRepo,
		scores,
		payments,
	)

	_, err := svc.Create(context.Background(), &CreateLoanInput{
		EmployeeID:       "emp-1",
		Amount:           1000,
		InstallmentCount: 3,
	})
	if !errors.Is(err, ErrScheduleWrite) {
		t.Fatalf("expected ErrScheduleWrite, got %v", err)
	}
	if errors.Is(err, ErrPaymentNotApproved) {
		t.Error("schedule failure must be distinct from the payment conflict")
	}
	// partial schedule is left behind, no compensation
	if len(installmentRepo.created) != 1 {
		t.Errorf("expected 1 written installment before the failure, got %d", len(installmentRepo.created))
	}
	if payments.called {
		t.Error("payment confirmation must not run after a schedule failure")
	}
}

func TestCreate_EmployeeNotFound(t *testing.T) {
	svc, _, _ := newTestService(5000, &mockScoreProvider{}, &mockPaymentSimulator{})

	if _, err := svc.Create(context.Background(), &CreateLoanInput{
		EmployeeID:       "missing",
		Amount:           100,
		InstallmentCount: 1,
	}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

package domain

import "time"

// ApprovalStatus represents the underwriting outcome of a loan
type ApprovalStatus string

const (
	StatusApproved ApprovalStatus = "APPROVED"
	StatusRejected ApprovalStatus = "REJECTED"
)

// PaymentStatusApproved is the only payment-simulator status that
// confirms a loan payment; any other value is a business rejection.
const PaymentStatusApproved = "approved"

// Company represents a registered employer
type Company struct {
	ID                 string
	CNPJ               string
	LegalName          string
	RepresentativeName string
	RepresentativeCPF  string
	Email              string
	Password           string // Hashed
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Employee represents a company employee (the loan applicant)
type Employee struct {
	ID        string
	Name      string
	CPF       string
	Email     string
	Password  string // Hashed
	Salary    float64
	CompanyID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Loan represents a payroll loan application and its decision
type Loan struct {
	ID               string
	EmployeeID       string
	Amount           float64
	InstallmentCount int
	ScoreUsed        int
	Status           ApprovalStatus
	RejectionReason  *string
	CreatedAt        time.Time
}

// Installment represents one dated repayment obligation of an approved loan
type Installment struct {
	ID      string
	LoanID  string
	Number  int
	Value   float64
	DueDate time.Time
}

// RefreshToken represents a refresh token in the domain
type RefreshToken struct {
	ID         uint
	EmployeeID string
	TokenHash  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	RevokedAt  *time.Time
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

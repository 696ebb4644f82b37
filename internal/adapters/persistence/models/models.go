package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Companies & Employees
// ============================================================

// Company represents the companies table (employers)
type Company struct {
	ID                 string         `gorm:"primaryKey;size:36" json:"id"`
	CNPJ               string         `gorm:"uniqueIndex;size:14;not null" json:"cnpj"`
	LegalName          string         `gorm:"size:150;not null" json:"legal_name"`
	RepresentativeName string         `gorm:"size:100;not null" json:"representative_name"`
	RepresentativeCPF  string         `gorm:"size:11;not null" json:"representative_cpf"`
	Email              string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password           string         `gorm:"size:255;not null" json:"-"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	Employees []Employee `gorm:"foreignKey:CompanyID" json:"employees,omitempty"`
}

func (Company) TableName() string {
	return "companies"
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CompanySummary DTO embedded in loan and employee responses
type CompanySummary struct {
	LegalName          string `json:"legal_name"`
	CNPJ               string `json:"cnpj"`
	RepresentativeName string `json:"representative_name"`
}

func (c *Company) ToSummary() *CompanySummary {
	return &CompanySummary{
		LegalName:          c.LegalName,
		CNPJ:               c.CNPJ,
		RepresentativeName: c.RepresentativeName,
	}
}

// Employee represents the employees table (loan applicants)
type Employee struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	CPF       string         `gorm:"uniqueIndex;size:11;not null" json:"cpf"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Salary    float64        `gorm:"type:decimal(15,2);not null" json:"salary"`
	CompanyID string         `gorm:"size:36;not null;index" json:"company_id"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Loans   []Loan   `gorm:"foreignKey:EmployeeID" json:"loans,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// EmployeeResponse DTO
type EmployeeResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	CPF       string          `json:"cpf"`
	Email     string          `json:"email"`
	Salary    float64         `json:"salary"`
	CompanyID string          `json:"company_id"`
	Company   *CompanySummary `json:"company,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func (e *Employee) ToResponse() *EmployeeResponse {
	resp := &EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		CPF:       e.CPF,
		Email:     e.Email,
		Salary:    e.Salary,
		CompanyID: e.CompanyID,
		CreatedAt: e.CreatedAt,
	}
	if e.Company != nil {
		resp.Company = e.Company.ToSummary()
	}
	return resp
}

// ============================================================
// Loans & Installments
// ============================================================

// Loan statuses. Exactly one is set, synchronously, at creation.
const (
	LoanStatusApproved = "APPROVED"
	LoanStatusRejected = "REJECTED"
)

// Loan represents the loans table
type Loan struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID       string    `gorm:"size:36;not null;index" json:"employee_id"`
	Amount           float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	InstallmentCount int       `gorm:"not null" json:"installment_count"`
	ScoreUsed        int       `gorm:"not null" json:"score_used"`
	Status           string    `gorm:"size:20;not null" json:"status"`
	RejectionReason  *string   `gorm:"size:255" json:"rejection_reason"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	Employee     *Employee     `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Installments []Installment `gorm:"foreignKey:LoanID" json:"installments,omitempty"`
}

func (Loan) TableName() string {
	return "loans"
}

func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// LoanResponse DTO
type LoanResponse struct {
	ID               string                `json:"id"`
	Amount           float64               `json:"amount"`
	InstallmentCount int                   `json:"installment_count"`
	ScoreUsed        int                   `json:"score_used"`
	Status           string                `json:"status"`
	CreatedAt        time.Time             `json:"created_at"`
	Company          *CompanySummary       `json:"company,omitempty"`
	Installments     []InstallmentResponse `json:"installments,omitempty"`
}

func (l *Loan) ToResponse() *LoanResponse {
	resp := &LoanResponse{
		ID:               l.ID,
		Amount:           l.Amount,
		InstallmentCount: l.InstallmentCount,
		ScoreUsed:        l.ScoreUsed,
		Status:           l.Status,
		CreatedAt:        l.CreatedAt,
	}
	if l.Employee != nil && l.Employee.Company != nil {
		resp.Company = l.Employee.Company.ToSummary()
	}
	for _, inst := range l.Installments {
		resp.Installments = append(resp.Installments, InstallmentResponse{
			Number:  inst.Number,
			Value:   inst.Value,
			DueDate: inst.DueDate,
		})
	}
	return resp
}

// Installment represents the installments table.
// Value is stored as a double on purpose: the schedule carries the
// full-precision division of the principal, not the 2-decimal figure
// shown during simulation.
type Installment struct {
	ID      string    `gorm:"primaryKey;size:36" json:"id"`
	LoanID  string    `gorm:"size:36;not null;index" json:"loan_id"`
	Number  int       `gorm:"not null" json:"number"`
	Value   float64   `gorm:"type:double;not null" json:"value"`
	DueDate time.Time `gorm:"type:date;not null" json:"due_date"`

	Loan *Loan `gorm:"foreignKey:LoanID" json:"loan,omitempty"`
}

func (Installment) TableName() string {
	return "installments"
}

func (i *Installment) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// InstallmentResponse DTO
type InstallmentResponse struct {
	Number  int       `json:"number"`
	Value   float64   `json:"value"`
	DueDate time.Time `json:"due_date"`
}

// ============================================================
// Auth
// ============================================================

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	EmployeeID string     `gorm:"size:36;not null;index" json:"employee_id"`
	TokenHash  string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt  *time.Time `gorm:"index" json:"revoked_at"`
	Employee   Employee   `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Company{},
		&Employee{},
		&RefreshToken{},
		&Loan{},
		&Installment{},
	)
}

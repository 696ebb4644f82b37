package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// CompanyErrors
var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrCNPJTaken       = errors.New("cnpj already registered")
	ErrInvalidCNPJ     = errors.New("invalid cnpj")
)

// EmployeeErrors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCPFTaken         = errors.New("cpf already registered")
	ErrEmailTaken       = errors.New("email already in use")
	ErrInvalidCPF       = errors.New("invalid cpf")
	ErrInvalidEmail     = errors.New("invalid email")
)

// LoanErrors
var (
	ErrLoanNotFound       = errors.New("loan not found")
	ErrMarginExceeded     = errors.New("requested amount exceeds credit margin")
	ErrPaymentNotApproved = errors.New("loan payment not approved")
	ErrScheduleWrite      = errors.New("installment schedule write failed")
	ErrScoreUnavailable   = errors.New("credit score service unavailable")
)

package services

import "context"

// ScoreProvider fetches an applicant's credit score from the external
// scoring service. Failures are typed (domain.ErrScoreUnavailable);
// the underwriting engine decides whether and how to fall back.
type ScoreProvider interface {
	Fetch(ctx context.Context, employeeID string) (int, error)
}

// PaymentSimulator checks the payment status of a committed loan.
// It returns the raw status string; the engine interprets it.
type PaymentSimulator interface {
	Check(ctx context.Context, loanID string) (string, error)
}

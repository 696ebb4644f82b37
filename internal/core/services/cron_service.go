package services

import (
	"context"
	"log"
	"time"

	"payconsig/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs the daily housekeeping jobs: purging expired
// refresh tokens and reporting overdue installments. Schedules are
// immutable, so the overdue job only reports.
type CronService struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	installmentRepo  repositories.InstallmentRepository
	cron             *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(
	refreshTokenRepo repositories.RefreshTokenRepository,
	installmentRepo repositories.InstallmentRepository,
) *CronService {
	return &CronService{
		refreshTokenRepo: refreshTokenRepo,
		installmentRepo:  installmentRepo,
		cron:             cron.New(),
	}
}

// Start registers and starts the scheduled jobs
func (s *CronService) Start() error {
	// Purge expired refresh tokens daily at 03:00
	if _, err := s.cron.AddFunc("0 3 * * *", s.purgeExpiredTokens); err != nil {
		return err
	}

	// Report overdue installments daily at 06:00
	if _, err := s.cron.AddFunc("0 6 * * *", s.reportOverdueInstallments); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Cron jobs scheduled")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Cron jobs stopped")
}

func (s *CronService) purgeExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.refreshTokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("❌ Expired token purge failed: %v", err)
		return
	}
	log.Println("✅ Expired refresh tokens purged")
}

func (s *CronService) reportOverdueInstallments() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.installmentRepo.CountOverdue(ctx)
	if err != nil {
		log.Printf("❌ Overdue installment report failed: %v", err)
		return
	}

	if count > 0 {
		log.Printf("⚠️ %d installments are past due", count)
	}
}

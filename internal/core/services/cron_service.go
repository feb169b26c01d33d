package services

import (
	"context"
	"log"
	"time"

	"motorcover/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService runs the scheduled maintenance jobs: the nightly policy
// status sweep and refresh token cleanup.
type CronService struct {
	cron          *cron.Cron
	policyService *PolicyService
	tokenRepo     repositories.RefreshTokenRepository
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		cron:          cron.New(),
		policyService: NewPolicyService(repositories.NewIssuedPolicyRepository(db)),
		tokenRepo:     repositories.NewRefreshTokenRepository(db),
	}
}

// Start registers and launches the scheduled jobs
func (s *CronService) Start() {
	// Policy status sweep: 00:15 daily. The sweep is idempotent, so an
	// extra on-demand run via the API never conflicts with the schedule.
	s.cron.AddFunc("15 0 * * *", s.runStatusSweep)

	// Refresh token cleanup: 03:00 daily
	s.cron.AddFunc("0 3 * * *", s.runTokenCleanup)

	s.cron.Start()
	log.Println("🚀 CronService started (status sweep 00:15, token cleanup 03:00)")
}

// Stop gracefully stops the scheduler
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}

func (s *CronService) runStatusSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	expired, err := s.policyService.SweepExpired(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Scheduled status sweep failed: %v", err)
		return
	}
	log.Printf("✅ Scheduled status sweep done (%d expired)", expired)
}

func (s *CronService) runTokenCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.tokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("❌ Refresh token cleanup failed: %v", err)
	}
}

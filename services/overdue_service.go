// services/overdue_service.go
package services

import (
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"swiftinvoice-backend/models"
	"swiftinvoice-backend/utils"
)

const defaultOverdueAfterDays = 30

// OverdueService periodically moves stale sent invoices to overdue. The
// status set itself allows any transition; this is the only automated one.
type OverdueService struct {
	db *gorm.DB
}

func NewOverdueService(db *gorm.DB) *OverdueService {
	return &OverdueService{db: db}
}

// StartScheduler runs the sweep daily at 9 AM.
func (s *OverdueService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 9 * * *", s.MarkOverdueInvoices); err != nil {
		utils.Log.Errorw("failed to schedule overdue sweep", "error", err)
		return
	}

	c.Start()
	utils.Log.Info("overdue scheduler started")
}

// MarkOverdueInvoices flips every sent invoice older than the configured
// threshold to overdue.
func (s *OverdueService) MarkOverdueInvoices() {
	cutoff := utils.BeginningOfDay(time.Now().AddDate(0, 0, -ThresholdDays()))

	result := s.db.Model(&models.Invoice{}).
		Where("status = ? AND created_at < ?", models.StatusSent, cutoff).
		Update("status", models.StatusOverdue)

	if result.Error != nil {
		utils.Log.Errorw("overdue sweep failed", "error", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		utils.Log.Infow("marked invoices overdue", "count", result.RowsAffected, "cutoff", cutoff)
	}
}

// ThresholdDays reads OVERDUE_AFTER_DAYS, defaulting to the payment terms
// printed on the invoice itself (net 30).
func ThresholdDays() int {
	if env := os.Getenv("OVERDUE_AFTER_DAYS"); env != "" {
		if d, err := strconv.Atoi(env); err == nil && d > 0 {
			return d
		}
	}
	return defaultOverdueAfterDays
}

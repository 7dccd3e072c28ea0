package utils

import (
	"lms/database"
	"lms/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeCleanupScheduler sets up the background sweep of expired SMS
// verification codes. Expiry is also filtered at read time; the sweep
// only keeps the table from growing.
func InitializeCleanupScheduler() {
	log.Println("[CLEANUP] Initializing cleanup scheduler...")

	c := cron.New()

	// Run hourly
	c.AddFunc("0 * * * *", func() {
		DeleteExpiredSmsCodes()
	})

	c.Start()
	log.Println("[CLEANUP] Cleanup scheduler started - runs hourly")
}

// DeleteExpiredSmsCodes removes unverified codes past their expiry.
func DeleteExpiredSmsCodes() {
	db := database.Database.Db

	result := db.Unscoped().
		Where("verified = false AND expires_at < ?", time.Now()).
		Delete(&models.SmsVerificationCode{})
	if result.Error != nil {
		log.Printf("[CLEANUP] Error deleting expired SMS codes: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[CLEANUP] Deleted %d expired SMS codes", result.RowsAffected)
	}
}

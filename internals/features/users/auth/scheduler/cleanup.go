package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"chariots_backend/internals/features/users/auth/model"

	"gorm.io/gorm"
)

const cleanupBatchSize = 100

// CleanupExpiredTokens hard-deletes one batch of blacklist rows whose expiry
// lies before the cutoff. Returns how many rows were removed.
func CleanupExpiredTokens(db *gorm.DB, deleteBefore time.Time) (int64, error) {
	var expiredTokens []model.TokenBlacklist
	if err := db.
		Where("expired_at < ?", deleteBefore).
		Limit(cleanupBatchSize).
		Find(&expiredTokens).Error; err != nil {
		return 0, err
	}
	if len(expiredTokens) == 0 {
		return 0, nil
	}

	// Unscoped: the table carries a soft-delete column, but kept rows would
	// pile up and get re-selected every pass.
	res := db.Unscoped().Delete(&expiredTokens)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		// TTL from env (default: 7 days)
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Running token_blacklist cleanup...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)
			if removed, err := CleanupExpiredTokens(db, deleteBefore); err != nil {
				log.Printf("[CLEANUP ERROR] %v", err)
			} else if removed > 0 {
				log.Printf("[CLEANUP] %d expired tokens removed", removed)
			} else {
				log.Println("[CLEANUP] Nothing to remove")
			}

			// run every 24h
			time.Sleep(24 * time.Hour)
		}
	}()
}

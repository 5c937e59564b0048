package scheduler

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chariots_backend/internals/features/users/auth/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.TokenBlacklist{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCleanupExpiredTokensHardDeletes(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	expired := model.TokenBlacklist{Token: "expired-token", ExpiredAt: now.Add(-48 * time.Hour)}
	live := model.TokenBlacklist{Token: "live-token", ExpiredAt: now.Add(24 * time.Hour)}
	for _, row := range []*model.TokenBlacklist{&expired, &live} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	removed, err := CleanupExpiredTokens(db, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}

	// the row must be gone for real, not soft-deleted
	var remaining int64
	if err := db.Unscoped().Model(&model.TokenBlacklist{}).Count(&remaining).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("rows left including soft-deleted = %d, want 1", remaining)
	}

	var kept model.TokenBlacklist
	if err := db.First(&kept, "token = ?", "live-token").Error; err != nil {
		t.Fatalf("live token should survive: %v", err)
	}
}

func TestCleanupExpiredTokensRepeatedPasses(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	for i := 0; i < cleanupBatchSize+20; i++ {
		row := model.TokenBlacklist{
			Token:     fmt.Sprintf("expired-%d", i),
			ExpiredAt: now.Add(-48 * time.Hour),
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	first, err := CleanupExpiredTokens(db, now)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if first != cleanupBatchSize {
		t.Fatalf("first pass removed %d, want %d", first, cleanupBatchSize)
	}

	second, err := CleanupExpiredTokens(db, now)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if second != 20 {
		t.Fatalf("second pass removed %d, want 20", second)
	}

	third, err := CleanupExpiredTokens(db, now)
	if err != nil {
		t.Fatalf("third pass: %v", err)
	}
	if third != 0 {
		t.Fatalf("third pass removed %d, want 0", third)
	}
}

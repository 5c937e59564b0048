package service

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	assetModel "chariots_backend/internals/features/fleet/assets/model"
	"chariots_backend/internals/features/fleet/locations/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&assetModel.AssetModel{}, &model.OffSiteLocationModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestDeleteLocation(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db)

	loc := model.OffSiteLocationModel{LocationName: "Workshop"}
	if err := db.Create(&loc).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}

	if err := svc.Delete(loc.LocationID); err != nil {
		t.Fatalf("delete empty location: %v", err)
	}

	var count int64
	db.Model(&model.OffSiteLocationModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("location count after delete = %d, want 0", count)
	}
}

func TestDeleteLocationRefusedWhileReferenced(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db)

	loc := model.OffSiteLocationModel{LocationName: "Storage Yard"}
	if err := db.Create(&loc).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	name := loc.LocationName
	asset := assetModel.AssetModel{
		AssetName:     "Scooter 7",
		AssetType:     assetModel.AssetTypeScooter,
		AssetStatus:   assetModel.AssetStatusAvailable,
		AssetLocation: &name,
	}
	if err := db.Create(&asset).Error; err != nil {
		t.Fatalf("seed asset: %v", err)
	}

	if err := svc.Delete(loc.LocationID); err != ErrLocationReferenced {
		t.Fatalf("delete referenced location: err = %v, want ErrLocationReferenced", err)
	}

	// relocate the asset, then the delete goes through
	if err := db.Model(&assetModel.AssetModel{}).
		Where("asset_id = ?", asset.AssetID).
		Update("asset_location", nil).Error; err != nil {
		t.Fatalf("relocate asset: %v", err)
	}
	if err := svc.Delete(loc.LocationID); err != nil {
		t.Fatalf("delete after relocation: %v", err)
	}
}

func TestDeleteLocationNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db)

	if err := svc.Delete(uuid.NewString()); err != ErrLocationNotFound {
		t.Fatalf("err = %v, want ErrLocationNotFound", err)
	}
}

func TestReferenceCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db)

	loc := model.OffSiteLocationModel{LocationName: "Depot"}
	if err := db.Create(&loc).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	name := loc.LocationName
	for i := 0; i < 3; i++ {
		asset := assetModel.AssetModel{
			AssetName:     "Trike",
			AssetType:     assetModel.AssetTypeTrike,
			AssetStatus:   assetModel.AssetStatusAvailable,
			AssetLocation: &name,
		}
		if err := db.Create(&asset).Error; err != nil {
			t.Fatalf("seed asset: %v", err)
		}
	}

	n, err := svc.ReferenceCount(loc)
	if err != nil {
		t.Fatalf("reference count: %v", err)
	}
	if n != 3 {
		t.Fatalf("reference count = %d, want 3", n)
	}
}

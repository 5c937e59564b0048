package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AssetTypeTrike   = "trike"
	AssetTypeScooter = "scooter"

	AssetStatusAvailable    = "available"
	AssetStatusInRepair     = "in_repair"
	AssetStatusOutOfService = "out_of_service"
)

// AssetModel is one trike or scooter unit. It is stationed either at a course
// (asset_course_id) or at a named off-site location (asset_location), never
// both.
type AssetModel struct {
	AssetID       string    `gorm:"column:asset_id;primaryKey;type:uuid" json:"asset_id"`
	AssetName     string    `gorm:"column:asset_name;type:varchar(255);not null" json:"asset_name"`
	AssetTag      *string   `gorm:"column:asset_tag;type:varchar(64)" json:"asset_tag"`
	AssetType     string    `gorm:"column:asset_type;type:varchar(16);not null;default:trike" json:"asset_type"`
	AssetStatus   string    `gorm:"column:asset_status;type:varchar(20);not null;default:available" json:"asset_status"`
	AssetCourseID *string   `gorm:"column:asset_course_id;type:uuid;index" json:"asset_course_id"`
	AssetLocation *string   `gorm:"column:asset_location;type:varchar(255)" json:"asset_location"`
	AssetNotes    *string   `gorm:"column:asset_notes;type:text" json:"asset_notes"`
	AssetCreatedAt time.Time `gorm:"column:asset_created_at;autoCreateTime" json:"asset_created_at"`
	AssetUpdatedAt time.Time `gorm:"column:asset_updated_at;autoUpdateTime" json:"asset_updated_at"`
}

func (AssetModel) TableName() string {
	return "assets"
}

func (m *AssetModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssetID == "" {
		m.AssetID = uuid.NewString()
	}
	return nil
}

func ValidAssetType(t string) bool {
	return t == AssetTypeTrike || t == AssetTypeScooter
}

func ValidAssetStatus(s string) bool {
	switch s {
	case AssetStatusAvailable, AssetStatusInRepair, AssetStatusOutOfService:
		return true
	}
	return false
}

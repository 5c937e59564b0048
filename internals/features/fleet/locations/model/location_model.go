package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OffSiteLocationModel is the alternative parent for assets not stationed at a
// course (workshops, storage yards). Assets reference it by name through their
// asset_location column.
type OffSiteLocationModel struct {
	LocationID        string    `gorm:"column:location_id;primaryKey;type:uuid" json:"location_id"`
	LocationName      string    `gorm:"column:location_name;type:varchar(255);not null;uniqueIndex" json:"location_name"`
	LocationCreatedAt time.Time `gorm:"column:location_created_at;autoCreateTime" json:"location_created_at"`
}

func (OffSiteLocationModel) TableName() string {
	return "off_site_locations"
}

func (m *OffSiteLocationModel) BeforeCreate(tx *gorm.DB) error {
	if m.LocationID == "" {
		m.LocationID = uuid.NewString()
	}
	return nil
}

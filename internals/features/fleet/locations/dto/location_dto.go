package dto

import (
	"time"

	"chariots_backend/internals/features/fleet/locations/model"
)

type OffSiteLocationDTO struct {
	LocationID        string    `json:"location_id"`
	LocationName      string    `json:"location_name"`
	LocationCreatedAt time.Time `json:"location_created_at"`

	AssetCount *int64 `json:"asset_count,omitempty"`
}

func ToOffSiteLocationDTO(m model.OffSiteLocationModel) OffSiteLocationDTO {
	return OffSiteLocationDTO{
		LocationID:        m.LocationID,
		LocationName:      m.LocationName,
		LocationCreatedAt: m.LocationCreatedAt,
	}
}

type CreateOffSiteLocationRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

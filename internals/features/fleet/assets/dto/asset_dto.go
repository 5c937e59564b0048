package dto

import (
	"time"

	"chariots_backend/internals/features/fleet/assets/model"
)

// ============================
// Response DTO
// ============================

type AssetDTO struct {
	AssetID        string    `json:"asset_id"`
	AssetName      string    `json:"asset_name"`
	AssetTag       *string   `json:"asset_tag"`
	AssetType      string    `json:"asset_type"`
	AssetStatus    string    `json:"asset_status"`
	AssetCourseID  *string   `json:"asset_course_id"`
	AssetLocation  *string   `json:"asset_location"`
	AssetNotes     *string   `json:"asset_notes"`
	AssetCreatedAt time.Time `json:"asset_created_at"`
	AssetUpdatedAt time.Time `json:"asset_updated_at"`

	CourseName *string `json:"course_name,omitempty"`

	// filled on the detail endpoint
	IssueCount     *int64 `json:"issue_count,omitempty"`
	OpenIssueCount *int64 `json:"open_issue_count,omitempty"`
}

func ToAssetDTO(m model.AssetModel) AssetDTO {
	return AssetDTO{
		AssetID:        m.AssetID,
		AssetName:      m.AssetName,
		AssetTag:       m.AssetTag,
		AssetType:      m.AssetType,
		AssetStatus:    m.AssetStatus,
		AssetCourseID:  m.AssetCourseID,
		AssetLocation:  m.AssetLocation,
		AssetNotes:     m.AssetNotes,
		AssetCreatedAt: m.AssetCreatedAt,
		AssetUpdatedAt: m.AssetUpdatedAt,
	}
}

// ============================
// Request DTOs
// ============================

// CreateAssetRequest: exactly one of course_id / location must be set.
type CreateAssetRequest struct {
	Name     string  `json:"name" validate:"required,min=1"`
	AssetTag *string `json:"asset_tag"`
	Type     string  `json:"type" validate:"required"`
	CourseID *string `json:"course_id" validate:"omitempty,uuid4"`
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
}

type UpdateAssetRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	AssetTag *string `json:"asset_tag"`
	Type     *string `json:"type"`
	CourseID *string `json:"course_id" validate:"omitempty,uuid4"`
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
}

type UpdateAssetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

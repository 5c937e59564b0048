package dto

import (
	"encoding/json"
	"time"

	"chariots_backend/internals/features/fleet/issues/model"
)

// ============================
// Response DTO
// ============================

type IssueDTO struct {
	IssueID             string     `json:"issue_id"`
	IssueAssetID        string     `json:"issue_asset_id"`
	IssueCourseID       *string    `json:"issue_course_id"`
	IssueType           string     `json:"issue_type"`
	IssueSeverity       string     `json:"issue_severity"`
	IssueDescription    string     `json:"issue_description"`
	IssuePhotos         []string   `json:"issue_photos"`
	IssueReportedBy     string     `json:"issue_reported_by"`
	IssueReportedByName string     `json:"issue_reported_by_name"`
	IssueStatus         string     `json:"issue_status"`
	IssueAdminNotes     *string    `json:"issue_admin_notes"`
	IssueCostEstimate   *float64   `json:"issue_cost_estimate"`
	IssueFinalCost      *float64   `json:"issue_final_cost"`
	IssueCreatedAt      time.Time  `json:"issue_created_at"`
	IssueResolvedAt     *time.Time `json:"issue_resolved_at"`

	// joined display fields
	AssetName  string  `json:"asset_name,omitempty"`
	AssetTag   *string `json:"asset_tag,omitempty"`
	CourseName *string `json:"course_name,omitempty"`
}

func ToIssueDTO(m model.IssueModel) IssueDTO {
	photos := []string{}
	if len(m.IssuePhotos) > 0 {
		_ = json.Unmarshal(m.IssuePhotos, &photos)
	}
	return IssueDTO{
		IssueID:             m.IssueID,
		IssueAssetID:        m.IssueAssetID,
		IssueCourseID:       m.IssueCourseID,
		IssueType:           m.IssueType,
		IssueSeverity:       m.IssueSeverity,
		IssueDescription:    m.IssueDescription,
		IssuePhotos:         photos,
		IssueReportedBy:     m.IssueReportedBy,
		IssueReportedByName: m.IssueReportedByName,
		IssueStatus:         m.IssueStatus,
		IssueAdminNotes:     m.IssueAdminNotes,
		IssueCostEstimate:   m.IssueCostEstimate,
		IssueFinalCost:      m.IssueFinalCost,
		IssueCreatedAt:      m.IssueCreatedAt,
		IssueResolvedAt:     m.IssueResolvedAt,
	}
}

// ============================
// Request DTOs
// ============================

// CreateIssueRequest is the multipart form body of POST /api/issues; photos
// ride along as file parts.
type CreateIssueRequest struct {
	AssetID     string `form:"asset_id" validate:"required,uuid4"`
	IssueType   string `form:"issue_type" validate:"required"`
	Severity    string `form:"severity" validate:"required"`
	Description string `form:"description" validate:"required,min=3"`
}

type UpdateIssueStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdateIssueAdminRequest struct {
	AdminNotes   *string  `json:"admin_notes"`
	CostEstimate *float64 `json:"cost_estimate" validate:"omitempty,gte=0"`
	FinalCost    *float64 `json:"final_cost" validate:"omitempty,gte=0"`
}

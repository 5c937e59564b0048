package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	IssueTypeDamage    = "damage"
	IssueTypeBreakdown = "breakdown"
	IssueTypeBattery   = "battery"
	IssueTypeTyres     = "tyres"
	IssueTypeBrakes    = "brakes"
	IssueTypeOther     = "other"

	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"

	IssueStatusReported     = "reported"
	IssueStatusAcknowledged = "acknowledged"
	IssueStatusInRepair     = "in_repair"
	IssueStatusResolved     = "resolved"
)

// IssueModel is a reported problem against one asset. issue_course_id is
// denormalized from the asset at creation time so course scoping stays a
// single-column filter.
type IssueModel struct {
	IssueID             string         `gorm:"column:issue_id;primaryKey;type:uuid" json:"issue_id"`
	IssueAssetID        string         `gorm:"column:issue_asset_id;type:uuid;not null;index" json:"issue_asset_id"`
	IssueCourseID       *string        `gorm:"column:issue_course_id;type:uuid;index" json:"issue_course_id"`
	IssueType           string         `gorm:"column:issue_type;type:varchar(16);not null" json:"issue_type"`
	IssueSeverity       string         `gorm:"column:issue_severity;type:varchar(8);not null" json:"issue_severity"`
	IssueDescription    string         `gorm:"column:issue_description;type:text;not null" json:"issue_description"`
	IssuePhotos         datatypes.JSON `gorm:"column:issue_photos" json:"issue_photos"`
	IssueReportedBy     string         `gorm:"column:issue_reported_by;type:uuid;not null" json:"issue_reported_by"`
	IssueReportedByName string         `gorm:"column:issue_reported_by_name;type:varchar(255);not null" json:"issue_reported_by_name"`
	IssueStatus         string         `gorm:"column:issue_status;type:varchar(16);not null;default:reported" json:"issue_status"`
	IssueAdminNotes     *string        `gorm:"column:issue_admin_notes;type:text" json:"issue_admin_notes"`
	IssueCostEstimate   *float64       `gorm:"column:issue_cost_estimate" json:"issue_cost_estimate"`
	IssueFinalCost      *float64       `gorm:"column:issue_final_cost" json:"issue_final_cost"`
	IssueCreatedAt      time.Time      `gorm:"column:issue_created_at;autoCreateTime" json:"issue_created_at"`
	IssueResolvedAt     *time.Time     `gorm:"column:issue_resolved_at" json:"issue_resolved_at"`
}

func (IssueModel) TableName() string {
	return "issues"
}

func (m *IssueModel) BeforeCreate(tx *gorm.DB) error {
	if m.IssueID == "" {
		m.IssueID = uuid.NewString()
	}
	return nil
}

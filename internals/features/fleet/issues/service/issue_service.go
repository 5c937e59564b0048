package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	assetModel "chariots_backend/internals/features/fleet/assets/model"
	"chariots_backend/internals/features/fleet/issues/model"
	helper "chariots_backend/internals/helpers"
)

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrIssueNotFound = errors.New("issue not found")

	// ErrAssetStatusUpdate flags the accepted partial-failure case: the issue
	// row was written but the follow-up asset status write failed. There is no
	// compensating action; an operator reconciles by hand.
	ErrAssetStatusUpdate = errors.New("issue saved but asset status update failed")
)

type IssueService struct {
	DB *gorm.DB
}

func NewIssueService(db *gorm.DB) *IssueService {
	return &IssueService{DB: db}
}

type CreateIssueInput struct {
	AssetID        string
	IssueType      string
	Severity       string
	Description    string
	PhotoURLs      []string
	ReportedBy     string
	ReportedByName string
}

// Create inserts the issue and then, when the status policy forces it, flips
// the linked asset to out_of_service. The two writes are sequential and not
// transactional; on a failed second write the issue persists and
// ErrAssetStatusUpdate is returned alongside it.
func (s *IssueService) Create(input CreateIssueInput, scope helper.CourseScope) (*model.IssueModel, error) {
	var asset assetModel.AssetModel
	q := helper.ScopeAssets(s.DB.Model(&assetModel.AssetModel{}), scope)
	if err := q.Where("asset_id = ?", input.AssetID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	photos := input.PhotoURLs
	if photos == nil {
		photos = []string{}
	}
	photosJSON, err := json.Marshal(photos)
	if err != nil {
		return nil, err
	}

	issue := model.IssueModel{
		IssueAssetID:        asset.AssetID,
		IssueCourseID:       asset.AssetCourseID, // denormalized for scoping
		IssueType:           input.IssueType,
		IssueSeverity:       input.Severity,
		IssueDescription:    input.Description,
		IssuePhotos:         photosJSON,
		IssueReportedBy:     input.ReportedBy,
		IssueReportedByName: input.ReportedByName,
		IssueStatus:         model.IssueStatusReported,
	}

	if err := s.DB.Create(&issue).Error; err != nil {
		return nil, err
	}

	if forced, ok := StatusOnReport(input.Severity, input.IssueType); ok {
		if err := s.DB.Model(&assetModel.AssetModel{}).
			Where("asset_id = ?", asset.AssetID).
			Update("asset_status", forced).Error; err != nil {
			return &issue, fmt.Errorf("%w: %v", ErrAssetStatusUpdate, err)
		}
	}

	return &issue, nil
}

// SetStatus applies a direct admin status change. Resolving stamps
// issue_resolved_at and forces the asset back to available; any other status
// clears the resolution timestamp.
func (s *IssueService) SetStatus(issueID, newStatus string, now time.Time) (*model.IssueModel, error) {
	var issue model.IssueModel
	if err := s.DB.Where("issue_id = ?", issueID).First(&issue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"issue_status": newStatus,
	}
	if newStatus == model.IssueStatusResolved {
		updates["issue_resolved_at"] = now
	} else {
		updates["issue_resolved_at"] = nil
	}

	if err := s.DB.Model(&model.IssueModel{}).
		Where("issue_id = ?", issueID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	issue.IssueStatus = newStatus
	if newStatus == model.IssueStatusResolved {
		issue.IssueResolvedAt = &now
		if err := s.DB.Model(&assetModel.AssetModel{}).
			Where("asset_id = ?", issue.IssueAssetID).
			Update("asset_status", StatusOnResolve()).Error; err != nil {
			return &issue, fmt.Errorf("%w: %v", ErrAssetStatusUpdate, err)
		}
	} else {
		issue.IssueResolvedAt = nil
	}

	return &issue, nil
}

type AdminFieldUpdates struct {
	AdminNotes   *string
	CostEstimate *float64
	FinalCost    *float64
}

// UpdateAdminFields touches only the admin-owned columns.
func (s *IssueService) UpdateAdminFields(issueID string, upd AdminFieldUpdates) (*model.IssueModel, error) {
	var issue model.IssueModel
	if err := s.DB.Where("issue_id = ?", issueID).First(&issue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if upd.AdminNotes != nil {
		updates["issue_admin_notes"] = *upd.AdminNotes
	}
	if upd.CostEstimate != nil {
		updates["issue_cost_estimate"] = *upd.CostEstimate
	}
	if upd.FinalCost != nil {
		updates["issue_final_cost"] = *upd.FinalCost
	}
	if len(updates) == 0 {
		return &issue, nil
	}

	if err := s.DB.Model(&model.IssueModel{}).
		Where("issue_id = ?", issueID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Where("issue_id = ?", issueID).First(&issue).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

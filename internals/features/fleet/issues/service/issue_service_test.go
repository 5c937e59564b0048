package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chariots_backend/internals/constants"
	assetModel "chariots_backend/internals/features/fleet/assets/model"
	"chariots_backend/internals/features/fleet/issues/model"
	helper "chariots_backend/internals/helpers"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&assetModel.AssetModel{}, &model.IssueModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func adminScope() helper.CourseScope {
	return helper.CourseScope{UserID: uuid.NewString(), Role: constants.RoleAdmin}
}

func seedAsset(t *testing.T, db *gorm.DB, courseID *string) assetModel.AssetModel {
	t.Helper()
	asset := assetModel.AssetModel{
		AssetName:     "Trike 1",
		AssetType:     assetModel.AssetTypeTrike,
		AssetStatus:   assetModel.AssetStatusAvailable,
		AssetCourseID: courseID,
	}
	if err := db.Create(&asset).Error; err != nil {
		t.Fatalf("seed asset: %v", err)
	}
	return asset
}

func TestCreateIssueLeavesAssetAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db)
	asset := seedAsset(t, db, nil)

	issue, err := svc.Create(CreateIssueInput{
		AssetID:        asset.AssetID,
		IssueType:      model.IssueTypeTyres,
		Severity:       model.SeverityLow,
		Description:    "slow puncture rear left",
		ReportedBy:     uuid.NewString(),
		ReportedByName: "Pat",
	}, adminScope())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if issue.IssueStatus != model.IssueStatusReported {
		t.Fatalf("issue status = %q, want reported", issue.IssueStatus)
	}

	var got assetModel.AssetModel
	if err := db.First(&got, "asset_id = ?", asset.AssetID).Error; err != nil {
		t.Fatalf("reload asset: %v", err)
	}
	if got.AssetStatus != assetModel.AssetStatusAvailable {
		t.Fatalf("asset status = %q, want available", got.AssetStatus)
	}
}

func TestCreateIssueHighSeverityForcesOutOfService(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db)
	asset := seedAsset(t, db, nil)

	if _, err := svc.Create(CreateIssueInput{
		AssetID:        asset.AssetID,
		IssueType:      model.IssueTypeDamage,
		Severity:       model.SeverityHigh,
		Description:    "bent frame after collision",
		ReportedBy:     uuid.NewString(),
		ReportedByName: "Pat",
	}, adminScope()); err != nil {
		t.Fatalf("create: %v", err)
	}

	var got assetModel.AssetModel
	if err := db.First(&got, "asset_id = ?", asset.AssetID).Error; err != nil {
		t.Fatalf("reload asset: %v", err)
	}
	if got.AssetStatus != assetModel.AssetStatusOutOfService {
		t.Fatalf("asset status = %q, want out_of_service", got.AssetStatus)
	}
}

func TestCreateIssueBreakdownForcesRegardlessOfSeverity(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db)
	asset := seedAsset(t, db, nil)

	if _, err := svc.Create(CreateIssueInput{
		AssetID:        asset.AssetID,
		IssueType:      model.IssueTypeBreakdown,
		Severity:       model.SeverityLow,
		Description:    "won't start",
		ReportedBy:     uuid.NewString(),
		ReportedByName: "Pat",
	}, adminScope()); err != nil {
		t.Fatalf("create: %v", err)
	}

	var got assetModel.AssetModel
	if err := db.First(&got, "asset_id = ?", asset.AssetID).Error; err != nil {
		t.Fatalf("reload asset: %v", err)
	}
	if got.AssetStatus != assetModel.AssetStatusOutOfService {
		t.Fatalf("asset status = %q, want out_of_service", got.AssetStatus)
	}
}

func TestCreateIssueDenormalizesCourseID(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db)
	courseID := uuid.NewString()
	asset := seedAsset(t, db, &courseID)

	issue, err := svc.Create(CreateIssueInput{
		AssetID:        asset.AssetID,
		IssueType:      model.IssueTypeBrakes,
		Severity:       model.SeverityMedium,
		Description:    "brakes feel spongy",
		ReportedBy:     uuid.NewString(),
		ReportedByName: "Pat",
	}, adminScope())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if issue.IssueCourseID == nil || *issue.IssueCourseID != courseID {
		t.Fatalf("issue course id = %v, want %s", issue.IssueCourseID, courseID)
	}
}

func TestCreateIssueScopedToOwnCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db)
	theirCourse := uuid.NewString()
	myCourse := uuid.NewString()
	asset := seedAsset(t, db, &theirCourse)

	scope := helper.CourseScope{
		UserID:   uuid.NewString(),
		Role:     constants.RoleCourseUser,
		CourseID: &myCourse,
	}
	_, err := svc.Create(CreateIssueInput{
		AssetID:        asset.AssetID,
		IssueType:      model.IssueTypeOther,
		Severity:       model.SeverityLow,
		Description:    "scratched paint",
		ReportedBy:     scope.UserID,
		ReportedByName: "Pat",
	}, scope)
	if err != ErrAssetNotFound {
		t.Fatalf("create against foreign asset: err = %v, want ErrAssetNotFound", err)
	}
}

func TestCreateIssueUnassignedUserSeesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db)
	asset := seedAsset(t, db, nil)

	scope := helper.CourseScope{UserID: uuid.NewString(), Role: constants.RoleCourseUser}
	_, err := svc.Create(CreateIssueInput{
		AssetID:        asset.AssetID,
		IssueType:      model.IssueTypeOther,
		Severity:       model.SeverityLow,
		Description:    "scratched paint",
		ReportedBy:     scope.UserID,
		ReportedByName: "Pat",
	}, scope)
	if err != ErrAssetNotFound {
		t.Fatalf("create without a course: err = %v, want ErrAssetNotFound", err)
	}
}

func TestResolveStampsTimestampAndFreesAsset(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db)
	asset := seedAsset(t, db, nil)

	issue, err := svc.Create(CreateIssueInput{
		AssetID:        asset.AssetID,
		IssueType:      model.IssueTypeBreakdown,
		Severity:       model.SeverityHigh,
		Description:    "dead controller",
		ReportedBy:     uuid.NewString(),
		ReportedByName: "Pat",
	}, adminScope())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now().UTC()
	resolved, err := svc.SetStatus(issue.IssueID, model.IssueStatusResolved, now)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.IssueResolvedAt == nil {
		t.Fatal("resolved_at not set on resolve")
	}

	var got assetModel.AssetModel
	if err := db.First(&got, "asset_id = ?", asset.AssetID).Error; err != nil {
		t.Fatalf("reload asset: %v", err)
	}
	if got.AssetStatus != assetModel.AssetStatusAvailable {
		t.Fatalf("asset status after resolve = %q, want available", got.AssetStatus)
	}
}

func TestReopenClearsResolvedAt(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db)
	asset := seedAsset(t, db, nil)

	issue, err := svc.Create(CreateIssueInput{
		AssetID:        asset.AssetID,
		IssueType:      model.IssueTypeBattery,
		Severity:       model.SeverityMedium,
		Description:    "won't hold charge",
		ReportedBy:     uuid.NewString(),
		ReportedByName: "Pat",
	}, adminScope())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.SetStatus(issue.IssueID, model.IssueStatusResolved, time.Now().UTC()); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	reopened, err := svc.SetStatus(issue.IssueID, model.IssueStatusInRepair, time.Now().UTC())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.IssueResolvedAt != nil {
		t.Fatal("resolved_at should be cleared when the issue leaves resolved")
	}

	var got model.IssueModel
	if err := db.First(&got, "issue_id = ?", issue.IssueID).Error; err != nil {
		t.Fatalf("reload issue: %v", err)
	}
	if got.IssueResolvedAt != nil {
		t.Fatal("resolved_at should be NULL in the database after reopening")
	}
}

func TestUpdateAdminFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db)
	asset := seedAsset(t, db, nil)

	issue, err := svc.Create(CreateIssueInput{
		AssetID:        asset.AssetID,
		IssueType:      model.IssueTypeDamage,
		Severity:       model.SeverityLow,
		Description:    "cracked mudguard",
		ReportedBy:     uuid.NewString(),
		ReportedByName: "Pat",
	}, adminScope())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	notes := "ordered replacement part"
	estimate := 120.50
	got, err := svc.UpdateAdminFields(issue.IssueID, AdminFieldUpdates{
		AdminNotes:   &notes,
		CostEstimate: &estimate,
	})
	if err != nil {
		t.Fatalf("update admin fields: %v", err)
	}
	if got.IssueAdminNotes == nil || *got.IssueAdminNotes != notes {
		t.Fatalf("admin notes = %v, want %q", got.IssueAdminNotes, notes)
	}
	if got.IssueCostEstimate == nil || *got.IssueCostEstimate != estimate {
		t.Fatalf("cost estimate = %v, want %v", got.IssueCostEstimate, estimate)
	}
	if got.IssueFinalCost != nil {
		t.Fatal("final cost should stay unset")
	}
}

func TestSetStatusUnknownIssue(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db)

	if _, err := svc.SetStatus(uuid.NewString(), model.IssueStatusAcknowledged, time.Now().UTC()); err != ErrIssueNotFound {
		t.Fatalf("err = %v, want ErrIssueNotFound", err)
	}
}

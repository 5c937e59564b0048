package helper

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chariots_backend/internals/constants"
	assetModel "chariots_backend/internals/features/fleet/assets/model"
	issueModel "chariots_backend/internals/features/fleet/issues/model"
)

func newScopeTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&assetModel.AssetModel{}, &issueModel.IssueModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedAssets(t *testing.T, db *gorm.DB, courseA, courseB string) {
	t.Helper()
	offsite := "Workshop"
	rows := []assetModel.AssetModel{
		{AssetName: "A1", AssetType: assetModel.AssetTypeTrike, AssetStatus: assetModel.AssetStatusAvailable, AssetCourseID: &courseA},
		{AssetName: "A2", AssetType: assetModel.AssetTypeTrike, AssetStatus: assetModel.AssetStatusAvailable, AssetCourseID: &courseA},
		{AssetName: "B1", AssetType: assetModel.AssetTypeScooter, AssetStatus: assetModel.AssetStatusAvailable, AssetCourseID: &courseB},
		{AssetName: "Off", AssetType: assetModel.AssetTypeTrike, AssetStatus: assetModel.AssetStatusAvailable, AssetLocation: &offsite},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed asset: %v", err)
		}
	}
}

func TestScopeAssets(t *testing.T) {
	db := newScopeTestDB(t)
	courseA := "c3a1f1e2-0000-4000-8000-00000000000a"
	courseB := "c3a1f1e2-0000-4000-8000-00000000000b"
	seedAssets(t, db, courseA, courseB)

	count := func(scope CourseScope) int64 {
		var n int64
		if err := ScopeAssets(db.Model(&assetModel.AssetModel{}), scope).Count(&n).Error; err != nil {
			t.Fatalf("count: %v", err)
		}
		return n
	}

	if n := count(CourseScope{Role: constants.RoleAdmin}); n != 4 {
		t.Fatalf("admin sees %d assets, want 4", n)
	}
	if n := count(CourseScope{Role: constants.RoleCourseUser, CourseID: &courseA}); n != 2 {
		t.Fatalf("course A user sees %d assets, want 2", n)
	}
	if n := count(CourseScope{Role: constants.RoleCourseUser, CourseID: &courseB}); n != 1 {
		t.Fatalf("course B user sees %d assets, want 1", n)
	}
	// no course assignment: nothing, not even off-site units
	if n := count(CourseScope{Role: constants.RoleCourseUser}); n != 0 {
		t.Fatalf("unassigned user sees %d assets, want 0", n)
	}
}

func seedIssue(t *testing.T, db *gorm.DB, courseID *string, description string) {
	t.Helper()
	issue := issueModel.IssueModel{
		IssueAssetID:        "a3a1f1e2-0000-4000-8000-000000000001",
		IssueCourseID:       courseID,
		IssueType:           issueModel.IssueTypeDamage,
		IssueSeverity:       issueModel.SeverityLow,
		IssueDescription:    description,
		IssueReportedBy:     "u3a1f1e2-0000-4000-8000-000000000001",
		IssueReportedByName: "Pat",
		IssueStatus:         issueModel.IssueStatusReported,
	}
	if err := db.Create(&issue).Error; err != nil {
		t.Fatalf("seed issue: %v", err)
	}
}

func TestScopeIssues(t *testing.T) {
	db := newScopeTestDB(t)
	courseA := "c3a1f1e2-0000-4000-8000-00000000000a"
	courseB := "c3a1f1e2-0000-4000-8000-00000000000b"
	seedIssue(t, db, &courseA, "scratched panel")
	seedIssue(t, db, &courseA, "worn tyre")
	seedIssue(t, db, &courseB, "loose mirror")
	seedIssue(t, db, nil, "off-site unit dent")

	list := func(scope CourseScope) []issueModel.IssueModel {
		var rows []issueModel.IssueModel
		if err := ScopeIssues(db.Model(&issueModel.IssueModel{}), scope).Find(&rows).Error; err != nil {
			t.Fatalf("list: %v", err)
		}
		return rows
	}

	if rows := list(CourseScope{Role: constants.RoleAdmin}); len(rows) != 4 {
		t.Fatalf("admin sees %d issues, want 4", len(rows))
	}

	rows := list(CourseScope{Role: constants.RoleCourseUser, CourseID: &courseA})
	if len(rows) != 2 {
		t.Fatalf("course A user sees %d issues, want 2", len(rows))
	}
	for _, r := range rows {
		if r.IssueCourseID == nil || *r.IssueCourseID != courseA {
			t.Fatalf("course A user got issue of course %v", r.IssueCourseID)
		}
	}

	if rows := list(CourseScope{Role: constants.RoleCourseUser, CourseID: &courseB}); len(rows) != 1 {
		t.Fatalf("course B user sees %d issues, want 1", len(rows))
	}
	if rows := list(CourseScope{Role: constants.RoleCourseUser}); len(rows) != 0 {
		t.Fatalf("unassigned user sees %d issues, want 0", len(rows))
	}
}

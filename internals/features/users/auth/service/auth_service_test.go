package service

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chariots_backend/internals/configs"
	"chariots_backend/internals/constants"
	authModel "chariots_backend/internals/features/users/auth/model"
	userModel "chariots_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.UserProfileModel{},
		&userModel.UserRoleModel{},
		&authModel.RefreshToken{},
		&authModel.TokenBlacklist{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Fatal("wrong password accepted")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	newTestDB(t)

	courseID := "c3a1f1e2-0000-4000-8000-000000000001"
	now := time.Now().UTC()
	token, exp, err := IssueAccessToken(AccessClaims{
		UserID:   "u-1",
		Email:    "pat@example.com",
		FullName: "Pat",
		Role:     constants.RoleCourseUser,
		CourseID: &courseID,
	}, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !exp.After(now) {
		t.Fatalf("expiry %v not after issue time %v", exp, now)
	}

	claims, err := ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "u-1" || claims.Email != "pat@example.com" || claims.Role != constants.RoleCourseUser {
		t.Fatalf("claims round trip mismatch: %+v", claims)
	}
	if claims.CourseID == nil || *claims.CourseID != courseID {
		t.Fatalf("course_id claim = %v, want %s", claims.CourseID, courseID)
	}
}

func TestRefreshTokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	token, err := IssueRefreshToken(db, "u-1", nil, nil, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := ValidateRefreshToken(db, token, now)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if userID != "u-1" {
		t.Fatalf("user id = %q, want u-1", userID)
	}

	// the raw token never lands in the database
	var record authModel.RefreshToken
	if err := db.First(&record).Error; err != nil {
		t.Fatalf("load record: %v", err)
	}
	if string(record.TokenHash) == token {
		t.Fatal("refresh token stored unhashed")
	}

	if _, err := ValidateRefreshToken(db, token, now.Add(8*24*time.Hour)); err != ErrInvalidRefreshToken {
		t.Fatalf("expired token: err = %v, want ErrInvalidRefreshToken", err)
	}

	if err := RevokeRefreshTokens(db, "u-1", now); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := ValidateRefreshToken(db, token, now); err != ErrInvalidRefreshToken {
		t.Fatalf("revoked token: err = %v, want ErrInvalidRefreshToken", err)
	}
}

func TestCreateUserAndLogin(t *testing.T) {
	db := newTestDB(t)

	name := "Course Manager"
	courseID := "c3a1f1e2-0000-4000-8000-000000000002"
	user, err := CreateUser(db, CreateUserInput{
		Email:    "Manager@Example.com",
		Password: "long-enough-pass",
		FullName: &name,
		CourseID: &courseID,
		Role:     constants.RoleCourseUser,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.UserEmail != "manager@example.com" {
		t.Fatalf("email not normalized: %q", user.UserEmail)
	}

	result, err := Login(db, "manager@example.com", "long-enough-pass", nil, nil)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Role != constants.RoleCourseUser {
		t.Fatalf("role = %q, want course_user", result.Role)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatal("login did not issue both tokens")
	}
	if result.Profile.ProfileCourseID == nil || *result.Profile.ProfileCourseID != courseID {
		t.Fatalf("profile course = %v, want %s", result.Profile.ProfileCourseID, courseID)
	}

	if _, err := Login(db, "manager@example.com", "bad-pass", nil, nil); err != ErrInvalidCredentials {
		t.Fatalf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := Login(db, "nobody@example.com", "whatever1", nil, nil); err != ErrInvalidCredentials {
		t.Fatalf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	db := newTestDB(t)

	user, err := CreateUser(db, CreateUserInput{
		Email:    "gone@example.com",
		Password: "long-enough-pass",
		Role:     constants.RoleCourseUser,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := db.Model(&userModel.UserModel{}).
		Where("user_id = ?", user.UserID).
		Update("user_is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := Login(db, "gone@example.com", "long-enough-pass", nil, nil); err != ErrUserInactive {
		t.Fatalf("err = %v, want ErrUserInactive", err)
	}
}

func TestBootstrapAdminConflictsOnExistingEmail(t *testing.T) {
	db := newTestDB(t)

	admin, err := BootstrapAdmin(db, "owner@example.com", "long-enough-pass", nil)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	_, role, err := LoadProfileAndRole(db, admin.UserID)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if role != constants.RoleAdmin {
		t.Fatalf("role = %q, want admin", role)
	}

	if _, err := BootstrapAdmin(db, "owner@example.com", "another-pass-123", nil); err != ErrEmailTaken {
		t.Fatalf("second bootstrap: err = %v, want ErrEmailTaken", err)
	}
}

func TestRefreshRotatesAccessToken(t *testing.T) {
	db := newTestDB(t)

	if _, err := CreateUser(db, CreateUserInput{
		Email:    "pat@example.com",
		Password: "long-enough-pass",
		Role:     constants.RoleCourseUser,
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	login, err := Login(db, "pat@example.com", "long-enough-pass", nil, nil)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := Refresh(db, login.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatal("refresh did not issue an access token")
	}

	if _, err := Refresh(db, "not-a-real-token"); err != ErrInvalidRefreshToken {
		t.Fatalf("bogus token: err = %v, want ErrInvalidRefreshToken", err)
	}
}

package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"chariots_backend/internals/constants"
	userModel "chariots_backend/internals/features/users/user/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrUserInactive       = errors.New("account is deactivated")
)

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         userModel.UserModel
	Profile      userModel.UserProfileModel
	Role         string
}

// Login verifies credentials and issues the token pair.
func Login(db *gorm.DB, email, password string, userAgent, ip *string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user userModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(user.UserPassword, password) {
		return nil, ErrInvalidCredentials
	}
	if !user.UserIsActive {
		return nil, ErrUserInactive
	}

	profile, role, err := LoadProfileAndRole(db, user.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	fullName := ""
	if profile.ProfileFullName != nil {
		fullName = *profile.ProfileFullName
	}

	access, exp, err := IssueAccessToken(AccessClaims{
		UserID:   user.UserID,
		Email:    user.UserEmail,
		FullName: fullName,
		Role:     role,
		CourseID: profile.ProfileCourseID,
	}, now)
	if err != nil {
		return nil, err
	}

	refresh, err := IssueRefreshToken(db, user.UserID, userAgent, ip, now)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    exp,
		User:         user,
		Profile:      *profile,
		Role:         role,
	}, nil
}

// Refresh rotates a valid refresh token into a fresh access token.
func Refresh(db *gorm.DB, refreshToken string) (*LoginResult, error) {
	now := time.Now().UTC()

	userID, err := ValidateRefreshToken(db, refreshToken, now)
	if err != nil {
		return nil, err
	}

	var user userModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	if !user.UserIsActive {
		return nil, ErrUserInactive
	}

	profile, role, err := LoadProfileAndRole(db, user.UserID)
	if err != nil {
		return nil, err
	}

	fullName := ""
	if profile.ProfileFullName != nil {
		fullName = *profile.ProfileFullName
	}

	access, exp, err := IssueAccessToken(AccessClaims{
		UserID:   user.UserID,
		Email:    user.UserEmail,
		FullName: fullName,
		Role:     role,
		CourseID: profile.ProfileCourseID,
	}, now)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: access,
		ExpiresAt:   exp,
		User:        user,
		Profile:     *profile,
		Role:        role,
	}, nil
}

// LoadProfileAndRole fetches the profile row and role relation of a user.
// A missing role row falls back to course_user (the platform default).
func LoadProfileAndRole(db *gorm.DB, userID string) (*userModel.UserProfileModel, string, error) {
	var profile userModel.UserProfileModel
	if err := db.Where("profile_id = ?", userID).First(&profile).Error; err != nil {
		return nil, "", err
	}

	role := constants.RoleCourseUser
	var roleRow userModel.UserRoleModel
	if err := db.Where("user_role_user_id = ?", userID).First(&roleRow).Error; err == nil {
		role = roleRow.UserRoleRole
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	return &profile, role, nil
}

type CreateUserInput struct {
	Email    string
	Password string
	FullName *string
	CourseID *string
	Role     string
}

// CreateUser writes user + profile + role in one transaction (the original
// platform did this through a signup trigger).
func CreateUser(db *gorm.DB, input CreateUserInput) (*userModel.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing int64
	if err := db.Model(&userModel.UserProfileModel{}).
		Where("profile_email = ?", email).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		UserEmail:    email,
		UserPassword: hash,
		UserIsActive: true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := userModel.UserProfileModel{
			ProfileID:       user.UserID,
			ProfileEmail:    email,
			ProfileFullName: input.FullName,
			ProfileCourseID: input.CourseID,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		roleRow := userModel.UserRoleModel{
			UserRoleUserID: user.UserID,
			UserRoleRole:   input.Role,
		}
		return tx.Create(&roleRow).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// BootstrapAdmin creates the first privileged account. It refuses when any
// profile already carries the email.
func BootstrapAdmin(db *gorm.DB, email, password string, fullName *string) (*userModel.UserModel, error) {
	if fullName == nil {
		defaultName := "Admin"
		fullName = &defaultName
	}
	return CreateUser(db, CreateUserInput{
		Email:    email,
		Password: password,
		FullName: fullName,
		Role:     constants.RoleAdmin,
	})
}

package dto

import (
	"time"

	userModel "chariots_backend/internals/features/users/user/model"
)

// ============================
// Request DTOs
// ============================

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type BootstrapAdminRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName *string `json:"full_name"`
}

type RegisterUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName *string `json:"full_name"`
	CourseID *string `json:"course_id" validate:"omitempty,uuid4"`
}

// ============================
// Response DTOs
// ============================

type SessionDTO struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time  `json:"expires_at"`
	User         ProfileDTO `json:"user"`
}

type ProfileDTO struct {
	UserID   string  `json:"user_id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Role     string  `json:"role"`
	CourseID *string `json:"course_id"`
}

func ToProfileDTO(user userModel.UserModel, profile userModel.UserProfileModel, role string) ProfileDTO {
	return ProfileDTO{
		UserID:   user.UserID,
		Email:    user.UserEmail,
		FullName: profile.ProfileFullName,
		Role:     role,
		CourseID: profile.ProfileCourseID,
	}
}

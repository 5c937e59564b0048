package dto

import (
	"time"

	"chariots_backend/internals/features/users/user/model"
)

type UserProfileDTO struct {
	ProfileID        string    `json:"profile_id"`
	ProfileEmail     string    `json:"profile_email"`
	ProfileFullName  *string   `json:"profile_full_name"`
	ProfileCourseID  *string   `json:"profile_course_id"`
	ProfileCreatedAt time.Time `json:"profile_created_at"`

	Role       string  `json:"role"`
	CourseName *string `json:"course_name,omitempty"`
}

func ToUserProfileDTO(m model.UserProfileModel, role string) UserProfileDTO {
	return UserProfileDTO{
		ProfileID:        m.ProfileID,
		ProfileEmail:     m.ProfileEmail,
		ProfileFullName:  m.ProfileFullName,
		ProfileCourseID:  m.ProfileCourseID,
		ProfileCreatedAt: m.ProfileCreatedAt,
		Role:             role,
	}
}

type UpdateUserCourseRequest struct {
	CourseID *string `json:"course_id" validate:"omitempty,uuid4"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

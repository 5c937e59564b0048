package dto

import (
	"time"

	"chariots_backend/internals/features/fleet/courses/model"
)

type CourseDTO struct {
	CourseID           string    `json:"course_id"`
	CourseName         string    `json:"course_name"`
	CourseContactName  *string   `json:"course_contact_name"`
	CourseContactPhone *string   `json:"course_contact_phone"`
	CourseContactEmail *string   `json:"course_contact_email"`
	CourseCreatedAt    time.Time `json:"course_created_at"`

	// filled on list/detail
	AssetCount *int64 `json:"asset_count,omitempty"`
	UserCount  *int64 `json:"user_count,omitempty"`
}

func ToCourseDTO(m model.CourseModel) CourseDTO {
	return CourseDTO{
		CourseID:           m.CourseID,
		CourseName:         m.CourseName,
		CourseContactName:  m.CourseContactName,
		CourseContactPhone: m.CourseContactPhone,
		CourseContactEmail: m.CourseContactEmail,
		CourseCreatedAt:    m.CourseCreatedAt,
	}
}

type CreateCourseRequest struct {
	Name         string  `json:"name" validate:"required,min=1"`
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
}

type UpdateCourseRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
}

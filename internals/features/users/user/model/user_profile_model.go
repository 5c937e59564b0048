package model

import (
	"time"
)

// UserProfileModel mirrors the users table one-to-one; profile_id equals the
// user's id. Course assignment is optional (null = admin pool / unscoped).
type UserProfileModel struct {
	ProfileID        string    `gorm:"column:profile_id;primaryKey;type:uuid" json:"profile_id"`
	ProfileEmail     string    `gorm:"column:profile_email;type:varchar(255);not null;index" json:"profile_email"`
	ProfileFullName  *string   `gorm:"column:profile_full_name;type:varchar(255)" json:"profile_full_name"`
	ProfileCourseID  *string   `gorm:"column:profile_course_id;type:uuid;index" json:"profile_course_id"`
	ProfileCreatedAt time.Time `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt time.Time `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at"`
}

func (UserProfileModel) TableName() string {
	return "profiles"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID           string    `gorm:"column:course_id;primaryKey;type:uuid" json:"course_id"`
	CourseName         string    `gorm:"column:course_name;type:varchar(255);not null" json:"course_name"`
	CourseContactName  *string   `gorm:"column:course_contact_name;type:varchar(255)" json:"course_contact_name"`
	CourseContactPhone *string   `gorm:"column:course_contact_phone;type:varchar(64)" json:"course_contact_phone"`
	CourseContactEmail *string   `gorm:"column:course_contact_email;type:varchar(255)" json:"course_contact_email"`
	CourseCreatedAt    time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt    time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == "" {
		m.CourseID = uuid.NewString()
	}
	return nil
}

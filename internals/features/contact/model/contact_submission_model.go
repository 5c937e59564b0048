package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactSubmissionModel struct {
	ContactID          string    `gorm:"column:contact_id;primaryKey;type:uuid" json:"contact_id"`
	ContactName        string    `gorm:"column:contact_name;type:varchar(255);not null" json:"contact_name"`
	ContactEmail       string    `gorm:"column:contact_email;type:varchar(255);not null" json:"contact_email"`
	ContactPhone       *string   `gorm:"column:contact_phone;type:varchar(64)" json:"contact_phone"`
	ContactInquiryType string    `gorm:"column:contact_inquiry_type;type:varchar(64);not null" json:"contact_inquiry_type"`
	ContactMessage     string    `gorm:"column:contact_message;type:text;not null" json:"contact_message"`
	ContactCreatedAt   time.Time `gorm:"column:contact_created_at;autoCreateTime" json:"contact_created_at"`
}

func (ContactSubmissionModel) TableName() string {
	return "contact_submissions"
}

func (m *ContactSubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ContactID == "" {
		m.ContactID = uuid.NewString()
	}
	return nil
}

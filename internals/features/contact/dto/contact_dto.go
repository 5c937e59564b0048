package dto

import (
	"time"

	"chariots_backend/internals/features/contact/model"
)

type ContactSubmissionDTO struct {
	ContactID          string    `json:"contact_id"`
	ContactName        string    `json:"contact_name"`
	ContactEmail       string    `json:"contact_email"`
	ContactPhone       *string   `json:"contact_phone"`
	ContactInquiryType string    `json:"contact_inquiry_type"`
	ContactMessage     string    `json:"contact_message"`
	ContactCreatedAt   time.Time `json:"contact_created_at"`
}

func ToContactSubmissionDTO(m model.ContactSubmissionModel) ContactSubmissionDTO {
	return ContactSubmissionDTO{
		ContactID:          m.ContactID,
		ContactName:        m.ContactName,
		ContactEmail:       m.ContactEmail,
		ContactPhone:       m.ContactPhone,
		ContactInquiryType: m.ContactInquiryType,
		ContactMessage:     m.ContactMessage,
		ContactCreatedAt:   m.ContactCreatedAt,
	}
}

type CreateContactRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone"`
	InquiryType string  `json:"inquiry_type" validate:"required,min=1"`
	Message     string  `json:"message" validate:"required,min=3"`
}

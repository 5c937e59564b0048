package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chariots_backend/internals/features/contact/dto"
	"chariots_backend/internals/features/contact/model"
	"chariots_backend/internals/features/contact/service"
	helper "chariots_backend/internals/helpers"
)

var validateContact = validator.New()

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// =======================
// 📨 Submit Contact Form (public)
// The email dispatch is best-effort: a mailer failure never fails the
// submission that is already stored.
// =======================
func (ctrl *ContactController) CreateContactSubmission(c *fiber.Ctx) error {
	var body dto.CreateContactRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	submission := model.ContactSubmissionModel{
		ContactName:        body.Name,
		ContactEmail:       body.Email,
		ContactPhone:       body.Phone,
		ContactInquiryType: body.InquiryType,
		ContactMessage:     body.Message,
	}

	if err := ctrl.DB.Create(&submission).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store submission")
	}

	go func(in service.ContactEmailInput) {
		if err := service.SendContactEmails(in); err != nil {
			log.Printf("[WARNING] contact email dispatch failed: %v", err)
		}
	}(service.ContactEmailInput{
		Name:        body.Name,
		Email:       body.Email,
		Phone:       body.Phone,
		InquiryType: body.InquiryType,
		Message:     body.Message,
	})

	return helper.JsonCreated(c, "Message received", dto.ToContactSubmissionDTO(submission))
}

// =======================
// 📄 Get Contact Submissions (admin)
// =======================
func (ctrl *ContactController) GetContactSubmissions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ContactSubmissionModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
	}

	var submissions []model.ContactSubmissionModel
	if err := ctrl.DB.
		Order("contact_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&submissions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve submissions")
	}

	resp := make([]dto.ContactSubmissionDTO, 0, len(submissions))
	for _, s := range submissions {
		resp = append(resp, dto.ToContactSubmissionDTO(s))
	}

	return helper.JsonList(c, resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetModel "chariots_backend/internals/features/fleet/assets/model"
	"chariots_backend/internals/features/fleet/courses/dto"
	"chariots_backend/internals/features/fleet/courses/model"
	issueModel "chariots_backend/internals/features/fleet/issues/model"
	userModel "chariots_backend/internals/features/users/user/model"
	helper "chariots_backend/internals/helpers"
)

var validateCourse = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// =======================
// 📄 Get Courses (admin) with asset/user counts
// =======================
func (ctrl *CourseController) GetCourses(c *fiber.Ctx) error {
	var courses []model.CourseModel
	if err := ctrl.DB.Order("course_name ASC").Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}

	resp := make([]dto.CourseDTO, 0, len(courses))
	for _, course := range courses {
		d := dto.ToCourseDTO(course)

		var assetCount, userCount int64
		ctrl.DB.Model(&assetModel.AssetModel{}).
			Where("asset_course_id = ?", course.CourseID).Count(&assetCount)
		ctrl.DB.Model(&userModel.UserProfileModel{}).
			Where("profile_course_id = ?", course.CourseID).Count(&userCount)
		d.AssetCount = &assetCount
		d.UserCount = &userCount

		resp = append(resp, d)
	}

	return helper.JsonOK(c, "OK", resp)
}

// =======================
// 🔍 Get Course by ID (admin): detail + assets, users, recent issues
// =======================
func (ctrl *CourseController) GetCourseByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var course model.CourseModel
	if err := ctrl.DB.Where("course_id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}

	var assets []assetModel.AssetModel
	ctrl.DB.Where("asset_course_id = ?", id).Order("asset_name ASC").Find(&assets)

	var profiles []userModel.UserProfileModel
	ctrl.DB.Where("profile_course_id = ?", id).Order("profile_email ASC").Find(&profiles)

	var issues []issueModel.IssueModel
	ctrl.DB.Where("issue_course_id = ?", id).
		Order("issue_created_at DESC").
		Limit(10).
		Find(&issues)

	return helper.JsonOK(c, "OK", fiber.Map{
		"course":        dto.ToCourseDTO(course),
		"assets":        assets,
		"users":         profiles,
		"recent_issues": issues,
	})
}

// =======================
// ➕ Create Course (admin)
// =======================
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	course := model.CourseModel{
		CourseName:         body.Name,
		CourseContactName:  body.ContactName,
		CourseContactPhone: body.ContactPhone,
		CourseContactEmail: body.ContactEmail,
	}

	if err := ctrl.DB.Create(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return helper.JsonCreated(c, "Course created", dto.ToCourseDTO(course))
}

// =======================
// ✏️ Update Course (admin)
// =======================
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["course_name"] = *body.Name
	}
	if body.ContactName != nil {
		updates["course_contact_name"] = *body.ContactName
	}
	if body.ContactPhone != nil {
		updates["course_contact_phone"] = *body.ContactPhone
	}
	if body.ContactEmail != nil {
		updates["course_contact_email"] = *body.ContactEmail
	}

	if len(updates) > 0 {
		res := ctrl.DB.Model(&model.CourseModel{}).
			Where("course_id = ?", id).
			Updates(updates)
		if res.Error != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
		}
		if res.RowsAffected == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
	}

	var course model.CourseModel
	if err := ctrl.DB.Where("course_id = ?", id).First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}
	return helper.JsonOK(c, "Course updated", dto.ToCourseDTO(course))
}

// =======================
// 🗑️ Delete Course (admin)
// Refused while assets are still stationed at the course.
// =======================
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var assetCount int64
	if err := ctrl.DB.Model(&assetModel.AssetModel{}).
		Where("asset_course_id = ?", id).Count(&assetCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check course assets")
	}
	if assetCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Course still has assets assigned")
	}

	if err := ctrl.DB.Delete(&model.CourseModel{}, "course_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}

	return helper.JsonDeleted(c, "Course deleted", fiber.Map{
		"course_id": id,
	})
}

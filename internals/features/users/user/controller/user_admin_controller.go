package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chariots_backend/internals/constants"
	courseModel "chariots_backend/internals/features/fleet/courses/model"
	"chariots_backend/internals/features/users/user/dto"
	"chariots_backend/internals/features/users/user/model"
	helper "chariots_backend/internals/helpers"
)

var validateUser = validator.New()

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

// =======================
// 📄 Get Users (admin): profiles + roles + course names
// =======================
func (ctrl *UserAdminController) GetUsers(c *fiber.Ctx) error {
	var profiles []model.UserProfileModel
	if err := ctrl.DB.Order("profile_created_at DESC").Find(&profiles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	var roleRows []model.UserRoleModel
	roles := map[string]string{}
	if err := ctrl.DB.Find(&roleRows).Error; err == nil {
		for _, r := range roleRows {
			roles[r.UserRoleUserID] = r.UserRoleRole
		}
	}

	courseIDs := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if p.ProfileCourseID != nil {
			courseIDs = append(courseIDs, *p.ProfileCourseID)
		}
	}
	courseNames := map[string]string{}
	if len(courseIDs) > 0 {
		var courses []courseModel.CourseModel
		if err := ctrl.DB.Where("course_id IN ?", courseIDs).Find(&courses).Error; err == nil {
			for _, cc := range courses {
				courseNames[cc.CourseID] = cc.CourseName
			}
		}
	}

	resp := make([]dto.UserProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		role := roles[p.ProfileID]
		if role == "" {
			role = constants.RoleCourseUser
		}
		d := dto.ToUserProfileDTO(p, role)
		if p.ProfileCourseID != nil {
			if name, ok := courseNames[*p.ProfileCourseID]; ok {
				d.CourseName = &name
			}
		}
		resp = append(resp, d)
	}

	return helper.JsonOK(c, "OK", resp)
}

// =======================
// ✏️ Update User Course Assignment (admin)
// =======================
func (ctrl *UserAdminController) UpdateUserCourse(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateUserCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if body.CourseID != nil {
		var count int64
		if err := ctrl.DB.Model(&courseModel.CourseModel{}).
			Where("course_id = ?", *body.CourseID).Count(&count).Error; err != nil || count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Course not found")
		}
	}

	res := ctrl.DB.Model(&model.UserProfileModel{}).
		Where("profile_id = ?", id).
		Update("profile_course_id", body.CourseID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "User updated", fiber.Map{
		"profile_id": id,
		"course_id":  body.CourseID,
	})
}

// =======================
// 🔁 Update User Role (admin)
// Replaces the role row: delete existing, insert the new one.
// =======================
func (ctrl *UserAdminController) UpdateUserRole(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateUserRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !constants.IsValidRole(body.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown role")
	}

	var profile model.UserProfileModel
	if err := ctrl.DB.Where("profile_id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.UserRoleModel{}, "user_role_user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Create(&model.UserRoleModel{
			UserRoleUserID: id,
			UserRoleRole:   body.Role,
		}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}

	return helper.JsonOK(c, "Role updated", fiber.Map{
		"profile_id": id,
		"role":       body.Role,
	})
}

package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chariots_backend/internals/constants"
	"chariots_backend/internals/features/users/auth/dto"
	"chariots_backend/internals/features/users/auth/service"
	userModel "chariots_backend/internals/features/users/user/model"
	helper "chariots_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =======================
// 🔑 Login
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ua := c.Get(fiber.HeaderUserAgent)
	ip := c.IP()
	result, err := service.Login(ctrl.DB, body.Email, body.Password, strptr(ua), strptr(ip))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		if errors.Is(err, service.ErrUserInactive) {
			return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
		}
		log.Printf("[ERROR] login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return helper.JsonOK(c, "Login successful", dto.SessionDTO{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresAt:    result.ExpiresAt,
		User:         dto.ToProfileDTO(result.User, result.Profile, result.Role),
	})
}

// =======================
// ♻️ Refresh
// =======================
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var body dto.RefreshRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	result, err := service.Refresh(ctrl.DB, body.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefreshToken) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired refresh token")
		}
		if errors.Is(err, service.ErrUserInactive) {
			return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
		}
		log.Printf("[ERROR] refresh: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Refresh failed")
	}

	return helper.JsonOK(c, "Token refreshed", dto.SessionDTO{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		User:        dto.ToProfileDTO(result.User, result.Profile, result.Role),
	})
}

// =======================
// 🚪 Logout (blacklist current access token, revoke refresh tokens)
// =======================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString := extractBearer(c)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing token")
	}

	userID, _ := c.Locals("user_id").(string)
	now := time.Now().UTC()

	if err := service.BlacklistAccessToken(ctrl.DB, tokenString, now.Add(24*time.Hour)); err != nil {
		log.Printf("[ERROR] blacklist: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}
	if userID != "" {
		if err := service.RevokeRefreshTokens(ctrl.DB, userID, now); err != nil {
			log.Printf("[WARNING] revoke refresh tokens: %v", err)
		}
	}

	return helper.JsonOK(c, "Logged out", nil)
}

// =======================
// 👤 Me
// =======================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	profile, role, err := service.LoadProfileAndRole(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	return helper.JsonOK(c, "OK", dto.ToProfileDTO(user, *profile, role))
}

// =======================
// 🛠️ Bootstrap Admin (one-time setup endpoint)
// Conflicts when a profile with the email already exists.
// =======================
func (ctrl *AuthController) BootstrapAdmin(c *fiber.Ctx) error {
	var body dto.BootstrapAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := service.BootstrapAdmin(ctrl.DB, body.Email, body.Password, body.FullName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return helper.JsonError(c, fiber.StatusBadRequest, "A user with this email already exists.")
		}
		log.Printf("[ERROR] bootstrap-admin: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin user")
	}

	log.Printf("✅ Admin user created: %s", user.UserEmail)
	return helper.JsonOK(c, "Admin user created successfully", fiber.Map{
		"user_id": user.UserID,
		"email":   user.UserEmail,
	})
}

// =======================
// ➕ Register Course User (admin)
// =======================
func (ctrl *AuthController) RegisterUser(c *fiber.Ctx) error {
	var body dto.RegisterUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := service.CreateUser(ctrl.DB, service.CreateUserInput{
		Email:    body.Email,
		Password: body.Password,
		FullName: body.FullName,
		CourseID: body.CourseID,
		Role:     constants.RoleCourseUser,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return helper.JsonError(c, fiber.StatusConflict, "A user with this email already exists.")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created", fiber.Map{
		"user_id": user.UserID,
		"email":   user.UserEmail,
	})
}

// =============================
// utils
// =============================

func extractBearer(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return c.Cookies("access_token")
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

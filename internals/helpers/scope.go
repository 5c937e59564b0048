package helper

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chariots_backend/internals/constants"
)

// CourseScope carries the caller's visibility, resolved from JWT claims by the
// auth middleware. Admins are unrestricted; course users only see records of
// their assigned course. This is the authoritative enforcement point; the UI
// hiding admin controls is not.
type CourseScope struct {
	UserID   string
	Role     string
	CourseID *string
}

func (s CourseScope) IsAdmin() bool {
	return s.Role == constants.RoleAdmin
}

// GetScope reads the locals set by the auth middleware.
func GetScope(c *fiber.Ctx) CourseScope {
	scope := CourseScope{}
	if v, ok := c.Locals("user_id").(string); ok {
		scope.UserID = v
	}
	if v, ok := c.Locals("userRole").(string); ok {
		scope.Role = v
	}
	if v, ok := c.Locals("course_id").(string); ok && v != "" {
		scope.CourseID = &v
	}
	return scope
}

// ScopeAssets restricts an asset query to the caller's course. Off-site assets
// have a NULL course_id, so course users never see them.
func ScopeAssets(q *gorm.DB, scope CourseScope) *gorm.DB {
	if scope.IsAdmin() {
		return q
	}
	if scope.CourseID == nil {
		// course user without an assigned course sees nothing
		return q.Where("1 = 0")
	}
	return q.Where("asset_course_id = ?", *scope.CourseID)
}

// ScopeIssues restricts an issue query to the caller's course.
func ScopeIssues(q *gorm.DB, scope CourseScope) *gorm.DB {
	if scope.IsAdmin() {
		return q
	}
	if scope.CourseID == nil {
		return q.Where("1 = 0")
	}
	return q.Where("issue_course_id = ?", *scope.CourseID)
}

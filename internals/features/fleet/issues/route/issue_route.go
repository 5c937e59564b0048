// file: internals/features/fleet/issues/route/issue_route.go
package route

import (
	controller "chariots_backend/internals/features/fleet/issues/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Issue reporting + listing for any logged-in user (scoped per course).
// Base: /api/issues
func IssueRoutes(authed fiber.Router, db *gorm.DB) {
	issueController := controller.NewIssueController(db)

	issues := authed.Group("/issues")
	issues.Get("/", issueController.GetIssues)
	issues.Get("/:id", issueController.GetIssueByID)
	issues.Post("/", issueController.CreateIssue)
}

// Admin-only issue workflow + cost tracking.
func IssueAdminRoutes(admin fiber.Router, db *gorm.DB) {
	issueController := controller.NewIssueController(db)

	issues := admin.Group("/issues")
	issues.Patch("/:id/status", issueController.UpdateIssueStatus)
	issues.Patch("/:id", issueController.UpdateIssueAdminFields)
}

// file: internals/features/contact/route/contact_route.go
package route

import (
	controller "chariots_backend/internals/features/contact/controller"
	rateLimiter "chariots_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Public contact form. Base: /api/contact
func ContactRoutes(app *fiber.App, db *gorm.DB) {
	contactController := controller.NewContactController(db)

	app.Post("/api/contact", rateLimiter.ContactRateLimiter(), contactController.CreateContactSubmission)
}

// Admin-only: browse submissions.
func ContactAdminRoutes(admin fiber.Router, db *gorm.DB) {
	contactController := controller.NewContactController(db)

	admin.Get("/contact", contactController.GetContactSubmissions)
}

// file: internals/features/users/auth/route/auth_route.go
package route

import (
	controller "chariots_backend/internals/features/users/auth/controller"
	rateLimiter "chariots_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Public auth endpoints. Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/refresh", authController.Refresh)

	// One-time setup: conflicts once any profile carries the email.
	baseAuth.Post("/bootstrap-admin", authController.BootstrapAdmin)
}

// Auth endpoints that require a valid token.
func AuthProtectedRoutes(authed fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := authed.Group("/auth")
	baseAuth.Get("/me", authController.Me)
	baseAuth.Post("/logout", authController.Logout)
}

// Admin-only: create course users.
func AuthAdminRoutes(admin fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	admin.Post("/auth/register", authController.RegisterUser)
}

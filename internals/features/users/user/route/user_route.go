// file: internals/features/users/user/route/user_route.go
package route

import (
	controller "chariots_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin-only user management. Base: /api/users
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userController := controller.NewUserAdminController(db)

	users := admin.Group("/users")
	users.Get("/", userController.GetUsers)
	users.Patch("/:id/course", userController.UpdateUserCourse)
	users.Patch("/:id/role", userController.UpdateUserRole)
}

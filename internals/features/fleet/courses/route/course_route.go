// file: internals/features/fleet/courses/route/course_route.go
package route

import (
	controller "chariots_backend/internals/features/fleet/courses/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin-only course management. Base: /api/courses
func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	courseController := controller.NewCourseController(db)

	courses := admin.Group("/courses")
	courses.Get("/", courseController.GetCourses)
	courses.Get("/:id", courseController.GetCourseByID)
	courses.Post("/", courseController.CreateCourse)
	courses.Put("/:id", courseController.UpdateCourse)
	courses.Delete("/:id", courseController.DeleteCourse)
}

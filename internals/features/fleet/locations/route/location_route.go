// file: internals/features/fleet/locations/route/location_route.go
package route

import (
	controller "chariots_backend/internals/features/fleet/locations/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin-only off-site location management. Base: /api/locations
func LocationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	locationController := controller.NewLocationController(db)

	locations := admin.Group("/locations")
	locations.Get("/", locationController.GetLocations)
	locations.Post("/", locationController.CreateLocation)
	locations.Delete("/:id", locationController.DeleteLocation)
}

// file: internals/features/fleet/assets/route/asset_route.go
package route

import (
	controller "chariots_backend/internals/features/fleet/assets/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Public fleet endpoints (no auth). Base: /api/fleet
func AssetPublicRoutes(app *fiber.App, db *gorm.DB) {
	assetController := controller.NewAssetController(db)

	app.Get("/api/fleet/summary", assetController.GetFleetSummary)
}

// Read access for any logged-in user; course users only see their own fleet.
// Base: /api/trikes
func AssetRoutes(authed fiber.Router, db *gorm.DB) {
	assetController := controller.NewAssetController(db)

	trikes := authed.Group("/trikes")
	trikes.Get("/", assetController.GetAssets)
	trikes.Get("/:id", assetController.GetAssetByID)
	trikes.Get("/:id/qrcode", assetController.GetAssetQRCode)
}

// Admin-only asset management.
func AssetAdminRoutes(admin fiber.Router, db *gorm.DB) {
	assetController := controller.NewAssetController(db)

	trikes := admin.Group("/trikes")
	trikes.Post("/", assetController.CreateAsset)
	trikes.Patch("/:id", assetController.UpdateAsset)
	trikes.Patch("/:id/status", assetController.UpdateAssetStatus)
	trikes.Delete("/:id", assetController.DeleteAsset)
}

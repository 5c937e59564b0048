// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chariots_backend/internals/constants"
	contactRoute "chariots_backend/internals/features/contact/route"
	assetRoute "chariots_backend/internals/features/fleet/assets/route"
	courseRoute "chariots_backend/internals/features/fleet/courses/route"
	issueRoute "chariots_backend/internals/features/fleet/issues/route"
	locationRoute "chariots_backend/internals/features/fleet/locations/route"
	authRoute "chariots_backend/internals/features/users/auth/route"
	userRoute "chariots_backend/internals/features/users/user/route"
	authMiddleware "chariots_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Mounting public routes...")
	authRoute.AuthRoutes(app, db)
	contactRoute.ContactRoutes(app, db)
	assetRoute.AssetPublicRoutes(app, db)

	// ===================== AUTHENTICATED =====================
	log.Println("[INFO] Mounting authenticated routes...")
	authed := app.Group("/api", authMiddleware.AuthMiddleware(db))

	authRoute.AuthProtectedRoutes(authed, db)
	assetRoute.AssetRoutes(authed, db)
	issueRoute.IssueRoutes(authed, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Mounting admin routes...")
	admin := app.Group("/api",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("fleet management"), constants.AdminOnly...),
	)

	authRoute.AuthAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	assetRoute.AssetAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	locationRoute.LocationAdminRoutes(admin, db)
	issueRoute.IssueAdminRoutes(admin, db)
	contactRoute.ContactAdminRoutes(admin, db)
}

// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	middlewares "arenaku_backend/internals/middlewares"
	arenakuMiddleware "arenaku_backend/internals/middlewares/auth"
	routeDetails "arenaku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Koneksi DB ikut context request (dipakai handler webhook).
	app.Use(middlewares.DBMiddleware(db))

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → JWT wajib
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group("/api/u",
		arenakuMiddleware.AuthJWT(arenakuMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ADMIN → JWT + role check
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		arenakuMiddleware.AuthJWT(arenakuMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		arenakuMiddleware.RequireAdmin(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Venue routes...")
	routeDetails.VenuePublicRoutes(public, db)
	routeDetails.VenueAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Academy routes...")
	routeDetails.AcademyPublicRoutes(public, db)
	routeDetails.AcademyAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Commerce routes...")
	routeDetails.CommercePublicRoutes(public, db)
	routeDetails.CommerceUserRoutes(user, db)
	routeDetails.CommerceAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Notification routes...")
	routeDetails.NotificationUserRoutes(user, db)
	routeDetails.NotificationAdminRoutes(admin, db)
}

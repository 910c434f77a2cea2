// file: internals/route/details/academy_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academyRoute "arenaku_backend/internals/features/academies/academies/route"
)

func AcademyAdminRoutes(r fiber.Router, db *gorm.DB) {
	academyRoute.AcademyAdminRoutes(r, db)
}

func AcademyPublicRoutes(r fiber.Router, db *gorm.DB) {
	academyRoute.AcademyPublicRoutes(r, db)
}

// file: internals/features/academies/academies/route/academy_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "arenaku_backend/internals/features/academies/academies/controller"
)

func AcademyAdminRoutes(r fiber.Router, db *gorm.DB) {
	acCtl := ctl.NewAcademyController(db, validator.New())

	ac := r.Group("/academies")
	ac.Post("/", acCtl.Create)
	ac.Patch("/:id", acCtl.Patch)
	ac.Patch("/:id/logo", acCtl.UploadLogo)
	ac.Delete("/:id", acCtl.Delete)
}

func AcademyPublicRoutes(r fiber.Router, db *gorm.DB) {
	acCtl := ctl.NewAcademyController(db, validator.New())

	ac := r.Group("/academies")
	ac.Get("/", acCtl.List)
	ac.Get("/:id", acCtl.GetByID)
}

// file: internals/features/venues/field_parties/route/field_party_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "arenaku_backend/internals/features/venues/field_parties/controller"
)

// FieldPartyAdminRoutes: CRUD + upload gambar (admin only).
func FieldPartyAdminRoutes(r fiber.Router, db *gorm.DB) {
	fpCtl := ctl.NewFieldPartyController(db, validator.New())

	fp := r.Group("/field-parties")
	fp.Post("/", fpCtl.Create)
	fp.Patch("/:id", fpCtl.Patch)
	fp.Patch("/:id/image", fpCtl.UploadImage)
	fp.Delete("/:id", fpCtl.Delete)
}

// FieldPartyPublicRoutes: katalog lapangan untuk halaman booking.
func FieldPartyPublicRoutes(r fiber.Router, db *gorm.DB) {
	fpCtl := ctl.NewFieldPartyController(db, validator.New())

	fp := r.Group("/field-parties")
	fp.Get("/", fpCtl.List)
	fp.Get("/slug/:slug", fpCtl.GetBySlug)
	fp.Get("/:id", fpCtl.GetByID)
}

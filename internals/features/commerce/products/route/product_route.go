// file: internals/features/commerce/products/route/product_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "arenaku_backend/internals/features/commerce/products/controller"
)

func ProductAdminRoutes(r fiber.Router, db *gorm.DB) {
	prodCtl := ctl.NewProductController(db, validator.New())

	prod := r.Group("/products")
	prod.Post("/", prodCtl.Create)
	prod.Patch("/:id", prodCtl.Patch)
	prod.Patch("/:id/image", prodCtl.UploadImage)
	prod.Delete("/:id", prodCtl.Delete)
}

func ProductPublicRoutes(r fiber.Router, db *gorm.DB) {
	prodCtl := ctl.NewProductController(db, validator.New())

	prod := r.Group("/products")
	prod.Get("/", prodCtl.List)
	prod.Get("/:id", prodCtl.GetByID)
}

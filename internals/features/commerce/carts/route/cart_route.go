// file: internals/features/commerce/carts/route/cart_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "arenaku_backend/internals/features/commerce/carts/controller"
)

// CartUserRoutes: semua operasi cart butuh login.
func CartUserRoutes(r fiber.Router, db *gorm.DB) {
	cartCtl := ctl.NewCartController(db, validator.New())

	cart := r.Group("/carts")
	cart.Get("/me", cartCtl.GetMyCart)
	cart.Delete("/me", cartCtl.ClearMyCart)
	cart.Post("/items", cartCtl.AddItem)
	cart.Patch("/items/:id", cartCtl.UpdateItem)
	cart.Delete("/items/:id", cartCtl.RemoveItem)
}

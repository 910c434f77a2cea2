// file: internals/features/commerce/orders/route/order_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "arenaku_backend/internals/features/commerce/orders/controller"
	"arenaku_backend/internals/middlewares"
)

// OrderUserRoutes: checkout & riwayat order milik user login.
func OrderUserRoutes(r fiber.Router, db *gorm.DB) {
	orderCtl := ctl.NewOrderController(db, validator.New())

	orders := r.Group("/orders")
	orders.Post("/checkout", middlewares.CheckoutRateLimiter(), orderCtl.Checkout)
	orders.Get("/me", orderCtl.ListMine)
	orders.Get("/:id", orderCtl.GetByID)
}

// OrderAdminRoutes: listing semua order.
func OrderAdminRoutes(r fiber.Router, db *gorm.DB) {
	orderCtl := ctl.NewOrderController(db, validator.New())

	orders := r.Group("/orders")
	orders.Get("/", orderCtl.List)
	orders.Get("/:id", orderCtl.GetByID)
}

// OrderWebhookRoutes: endpoint callback Midtrans, tanpa auth.
func OrderWebhookRoutes(r fiber.Router, db *gorm.DB) {
	orderCtl := ctl.NewOrderController(db, validator.New())

	r.Post("/payments/midtrans/webhook", orderCtl.HandleMidtransNotification)
}

// file: internals/route/details/commerce_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cartRoute "arenaku_backend/internals/features/commerce/carts/route"
	orderRoute "arenaku_backend/internals/features/commerce/orders/route"
	productRoute "arenaku_backend/internals/features/commerce/products/route"
)

// CommercePublicRoutes: katalog produk + webhook Midtrans (callback server-to-server).
func CommercePublicRoutes(r fiber.Router, db *gorm.DB) {
	productRoute.ProductPublicRoutes(r, db)
	orderRoute.OrderWebhookRoutes(r, db)
}

// CommerceUserRoutes: cart & checkout (JWT wajib).
func CommerceUserRoutes(r fiber.Router, db *gorm.DB) {
	cartRoute.CartUserRoutes(r, db)
	orderRoute.OrderUserRoutes(r, db)
}

// CommerceAdminRoutes: kelola produk + monitor seluruh order.
func CommerceAdminRoutes(r fiber.Router, db *gorm.DB) {
	productRoute.ProductAdminRoutes(r, db)
	orderRoute.OrderAdminRoutes(r, db)
}

// file: internals/route/details/notification_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationRoute "arenaku_backend/internals/features/notifications/route"
)

func NotificationAdminRoutes(r fiber.Router, db *gorm.DB) {
	notificationRoute.NotificationAdminRoutes(r, db)
}

func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	notificationRoute.NotificationUserRoutes(r, db)
}

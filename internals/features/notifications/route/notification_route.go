// file: internals/features/notifications/route/notification_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "arenaku_backend/internals/features/notifications/controller"
)

func NotificationAdminRoutes(r fiber.Router, db *gorm.DB) {
	notifCtl := ctl.NewNotificationController(db, validator.New())

	notif := r.Group("/notifications")
	notif.Post("/", notifCtl.Create)
}

func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	notifCtl := ctl.NewNotificationController(db, validator.New())

	notif := r.Group("/notifications")
	notif.Get("/me", notifCtl.ListMine)
	notif.Patch("/read-all", notifCtl.MarkAllRead)
	notif.Patch("/:id/read", notifCtl.MarkRead)
}

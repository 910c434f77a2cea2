// file: internals/features/venues/schedules/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "arenaku_backend/internals/features/venues/schedules/controller"
	svc "arenaku_backend/internals/features/venues/schedules/service"
	"arenaku_backend/internals/middlewares"
)

// FieldPartyScheduleAdminRoutes: CRUD konfigurasi + generate (destruktif, admin only).
func FieldPartyScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	schedCtl := ctl.NewFieldPartyScheduleController(db, v)
	genCtl := ctl.NewSlotGenerationController(db, svc.NewGormGenerator(db))

	sched := r.Group("/field-party-schedules")
	sched.Get("/", schedCtl.List)
	sched.Get("/:id", schedCtl.GetByID)
	sched.Post("/", schedCtl.Create)
	sched.Patch("/:id", schedCtl.Patch)
	sched.Delete("/:id", schedCtl.Delete)

	slots := r.Group("/field-party-slots")
	slots.Post("/generate", middlewares.GenerateRateLimiter(), genCtl.Generate)
}

// FieldPartySlotPublicRoutes: preview & listing slot (read-only, aman publik).
func FieldPartySlotPublicRoutes(r fiber.Router, db *gorm.DB) {
	genCtl := ctl.NewSlotGenerationController(db, svc.NewGormGenerator(db))

	slots := r.Group("/field-party-slots")
	slots.Get("/", genCtl.List)
	slots.Get("/preview", genCtl.Preview)
}

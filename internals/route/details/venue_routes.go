// file: internals/route/details/venue_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fieldPartyRoute "arenaku_backend/internals/features/venues/field_parties/route"
	scheduleRoute "arenaku_backend/internals/features/venues/schedules/route"
)

// VenueAdminRoutes: field party CRUD + konfigurasi jadwal + generate slot.
func VenueAdminRoutes(r fiber.Router, db *gorm.DB) {
	fieldPartyRoute.FieldPartyAdminRoutes(r, db)
	scheduleRoute.FieldPartyScheduleAdminRoutes(r, db)
}

// VenuePublicRoutes: katalog lapangan + listing/preview slot.
func VenuePublicRoutes(r fiber.Router, db *gorm.DB) {
	fieldPartyRoute.FieldPartyPublicRoutes(r, db)
	scheduleRoute.FieldPartySlotPublicRoutes(r, db)
}

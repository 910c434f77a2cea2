package middleware

import (
	"github.com/gofiber/fiber/v2"

	"arenaku_backend/internals/constants"
	helperAuth "arenaku_backend/internals/helpers/auth"
)

// RequireAdmin: dipasang SETELAH AuthJWT. Lolos bila is_admin true
// atau role termasuk jajaran admin.
func RequireAdmin() fiber.Handler {
	allowed := map[string]bool{}
	for _, r := range constants.AdminAndAbove {
		allowed[r] = true
	}

	return func(c *fiber.Ctx) error {
		if helperAuth.IsAdmin(c) {
			return c.Next()
		}
		if role, ok := c.Locals(helperAuth.LocRole).(string); ok && allowed[role] {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, "Akses khusus admin")
	}
}

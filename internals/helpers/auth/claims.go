// file: internals/helpers/auth/claims.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ==========================
   Locals keys (seragam)
========================== */

const (
	LocUserID    = "user_id"
	LocRole      = "role"
	LocIsAdmin   = "is_admin"
	LocAcademyID = "academy_id"
)

// Ambil user_id dari c.Locals(LocUserID)
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// IsAdmin: cek flag is_admin atau role "admin"/"owner" di locals.
func IsAdmin(c *fiber.Ctx) bool {
	if v, ok := c.Locals(LocIsAdmin).(bool); ok && v {
		return true
	}
	if r, ok := c.Locals(LocRole).(string); ok {
		switch strings.ToLower(strings.TrimSpace(r)) {
		case "admin", "owner":
			return true
		}
	}
	return false
}

// GetAcademyIDFromToken: scope akademi dari token (boleh kosong).
func GetAcademyIDFromToken(c *fiber.Ctx) uuid.UUID {
	if s, ok := c.Locals(LocAcademyID).(string); ok {
		if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
			return id
		}
	}
	return uuid.Nil
}

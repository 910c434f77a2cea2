// file: internals/features/venues/schedules/controller/schedule_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "arenaku_backend/internals/features/venues/schedules/dto"
	m "arenaku_backend/internals/features/venues/schedules/model"
	helper "arenaku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type FieldPartyScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFieldPartyScheduleController(db *gorm.DB, v *validator.Validate) *FieldPartyScheduleController {
	return &FieldPartyScheduleController{DB: db, Validate: v}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func parseUUIDQuery(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Query(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation
	// 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}

/* =========================
   Query: List
   ========================= */

type listScheduleQuery struct {
	FieldPartyID string `query:"field_party_id"`
	Active       *bool  `query:"active"`
}

func (ctl *FieldPartyScheduleController) List(c *fiber.Ctx) error {
	var q listScheduleQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.FieldPartyScheduleModel{})

	if q.FieldPartyID != "" {
		if _, err := uuid.Parse(q.FieldPartyID); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "field_party_id invalid")
		}
		db = db.Where("field_party_schedule_field_party_id = ?", q.FieldPartyID)
	}
	if q.Active != nil {
		db = db.Where("field_party_schedule_is_active = ?", *q.Active)
	}

	p := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.FieldPartyScheduleModel
	if err := db.
		Order("field_party_schedule_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	out := make([]d.FieldPartyScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewFieldPartyScheduleResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(out)))
}

/* =========================
   GetByID
   ========================= */

func (ctl *FieldPartyScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.FieldPartyScheduleModel
	if err := ctl.DB.
		Where("field_party_schedule_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Konfigurasi jadwal tidak ditemukan")
		}
		return writePGError(c, err)
	}

	return helper.JsonOK(c, "ok", d.NewFieldPartyScheduleResponse(&row))
}

/* =========================
   Create
   ========================= */

func (ctl *FieldPartyScheduleController) Create(c *fiber.Ctx) error {
	var req d.CreateFieldPartyScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var model m.FieldPartyScheduleModel
	if err := req.ApplyToModel(&model); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// Satu konfigurasi aktif per field party: nonaktifkan yang lama dalam satu transaksi.
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if model.FieldPartyScheduleIsActive {
			if err := tx.Model(&m.FieldPartyScheduleModel{}).
				Where("field_party_schedule_field_party_id = ? AND field_party_schedule_is_active = ?",
					model.FieldPartyScheduleFieldPartyID, true).
				Update("field_party_schedule_is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&model).Error
	})
	if err != nil {
		return writePGError(c, err)
	}

	return helper.JsonCreated(c, "Konfigurasi jadwal dibuat", d.NewFieldPartyScheduleResponse(&model))
}

/* =========================
   Patch (Partial)
   ========================= */

func (ctl *FieldPartyScheduleController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.FieldPartyScheduleModel
	if err := ctl.DB.
		Where("field_party_schedule_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Konfigurasi jadwal tidak ditemukan")
		}
		return writePGError(c, err)
	}

	var req d.PatchFieldPartyScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.ApplyPatch(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(&existing).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonUpdated(c, "Konfigurasi jadwal diperbarui", d.NewFieldPartyScheduleResponse(&existing))
}

/* =========================
   Soft Delete
   ========================= */

func (ctl *FieldPartyScheduleController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.FieldPartyScheduleModel
	if err := ctl.DB.
		Where("field_party_schedule_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Konfigurasi jadwal tidak ditemukan")
		}
		return writePGError(c, err)
	}

	// GORM soft delete → set deleted_at
	if err := ctl.DB.Delete(&existing).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonDeleted(c, "Konfigurasi jadwal dihapus", fiber.Map{"field_party_schedule_id": id})
}

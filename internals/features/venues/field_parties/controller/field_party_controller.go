// file: internals/features/venues/field_parties/controller/field_party_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "arenaku_backend/internals/features/venues/field_parties/dto"
	m "arenaku_backend/internals/features/venues/field_parties/model"
	helper "arenaku_backend/internals/helpers"
)

type FieldPartyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFieldPartyController(db *gorm.DB, v *validator.Validate) *FieldPartyController {
	return &FieldPartyController{DB: db, Validate: v}
}

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writePGError(c *fiber.Ctx, err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "Referensi tidak ditemukan (FK violation).")
		case "23505":
			return helper.JsonError(c, http.StatusConflict, "Data duplikat (unique violation).")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params("id")))
}

/* =========================
   List (public & admin)
   ========================= */

type listFieldPartyQuery struct {
	AcademyID string `query:"academy_id"`
	SportType string `query:"sport_type"`
	Indoor    *bool  `query:"indoor"`
	Active    *bool  `query:"active"`
	Search    string `query:"search"`
}

func (ctl *FieldPartyController) List(c *fiber.Ctx) error {
	var q listFieldPartyQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.FieldPartyModel{})

	if q.AcademyID != "" {
		if _, err := uuid.Parse(q.AcademyID); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "academy_id invalid")
		}
		db = db.Where("field_party_academy_id = ?", q.AcademyID)
	}
	if q.SportType != "" {
		db = db.Where("field_party_sport_type = ?", strings.ToLower(q.SportType))
	}
	if q.Indoor != nil {
		db = db.Where("field_party_is_indoor = ?", *q.Indoor)
	}
	if q.Active != nil {
		db = db.Where("field_party_is_active = ?", *q.Active)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		db = db.Where("field_party_name ILIKE ?", "%"+s+"%")
	}

	p := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.FieldPartyModel
	if err := db.
		Order("field_party_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	resp := make([]d.FieldPartyResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, d.NewFieldPartyResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

/* =========================
   Get by ID / slug
   ========================= */

func (ctl *FieldPartyController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var row m.FieldPartyModel
	if err := ctl.DB.First(&row, "field_party_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Field party tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.NewFieldPartyResponse(&row))
}

func (ctl *FieldPartyController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, http.StatusBadRequest, "slug is required")
	}

	var row m.FieldPartyModel
	if err := ctl.DB.First(&row, "field_party_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Field party tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.NewFieldPartyResponse(&row))
}

/* =========================
   Create
   ========================= */

func (ctl *FieldPartyController) Create(c *fiber.Ctx) error {
	var req d.CreateFieldPartyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.FieldPartyModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	slug, err := helper.EnsureUniqueSlug(ctl.DB, helper.GenerateSlug(row.FieldPartyName), "field_parties", "field_party_slug")
	if err != nil {
		return writePGError(c, err)
	}
	row.FieldPartySlug = slug

	if err := ctl.DB.Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Field party berhasil dibuat", d.NewFieldPartyResponse(&row))
}

/* =========================
   Patch
   ========================= */

func (ctl *FieldPartyController) Patch(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var req d.PatchFieldPartyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.FieldPartyModel
	if err := ctl.DB.First(&row, "field_party_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Field party tidak ditemukan")
		}
		return writePGError(c, err)
	}

	oldName := row.FieldPartyName
	if err := req.ApplyPatch(&row); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// Nama berubah → slug ikut diperbarui.
	if row.FieldPartyName != oldName {
		slug, err := helper.EnsureUniqueSlug(ctl.DB, helper.GenerateSlug(row.FieldPartyName), "field_parties", "field_party_slug")
		if err != nil {
			return writePGError(c, err)
		}
		row.FieldPartySlug = slug
	}

	if err := ctl.DB.Save(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Field party berhasil diperbarui", d.NewFieldPartyResponse(&row))
}

/* =========================
   Upload image (multipart → WebP)
   ========================= */

func (ctl *FieldPartyController) UploadImage(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "File 'image' wajib diunggah")
	}

	var row m.FieldPartyModel
	if err := ctl.DB.First(&row, "field_party_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Field party tidak ditemukan")
		}
		return writePGError(c, err)
	}

	url, err := helper.UploadImageToStorage("field_parties", fh)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	// Gambar lama dihapus best-effort; kegagalan delete tidak membatalkan update.
	if old := helper.ExtractStoragePath(row.FieldPartyImageURL); old != "" {
		if err := helper.DeleteFromStorage("image", old); err != nil {
			log.Println("[WARN] gagal hapus gambar lama:", err)
		}
	}

	row.FieldPartyImageURL = url
	if err := ctl.DB.Model(&row).Update("field_party_image_url", url).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Gambar field party diperbarui", d.NewFieldPartyResponse(&row))
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *FieldPartyController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	res := ctl.DB.Delete(&m.FieldPartyModel{}, "field_party_id = ?", id)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Field party tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Field party berhasil dihapus", fiber.Map{"field_party_id": id})
}

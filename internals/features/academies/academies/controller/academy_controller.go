// file: internals/features/academies/academies/controller/academy_controller.go
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

	d "arenaku_backend/internals/features/academies/academies/dto"
	m "arenaku_backend/internals/features/academies/academies/model"
	helper "arenaku_backend/internals/helpers"
)

type AcademyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAcademyController(db *gorm.DB, v *validator.Validate) *AcademyController {
	return &AcademyController{DB: db, Validate: v}
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params("id")))
}

type listAcademyQuery struct {
	Active *bool  `query:"active"`
	Search string `query:"search"`
}

func (ctl *AcademyController) List(c *fiber.Ctx) error {
	var q listAcademyQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.AcademyModel{})
	if q.Active != nil {
		db = db.Where("academy_is_active = ?", *q.Active)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		db = db.Where("academy_name ILIKE ?", "%"+s+"%")
	}

	p := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.AcademyModel
	if err := db.
		Order("academy_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	resp := make([]d.AcademyResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, d.NewAcademyResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

func (ctl *AcademyController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var row m.AcademyModel
	if err := ctl.DB.First(&row, "academy_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Akademi tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", d.NewAcademyResponse(&row))
}

func (ctl *AcademyController) Create(c *fiber.Ctx) error {
	var req d.CreateAcademyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.AcademyModel
	req.ApplyToModel(&row)

	slug, err := helper.EnsureUniqueSlug(ctl.DB, helper.GenerateSlug(row.AcademyName), "academies", "academy_slug")
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	row.AcademySlug = slug

	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Akademi berhasil dibuat", d.NewAcademyResponse(&row))
}

func (ctl *AcademyController) Patch(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var req d.PatchAcademyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.AcademyModel
	if err := ctl.DB.First(&row, "academy_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Akademi tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	oldName := row.AcademyName
	req.ApplyPatch(&row)

	if row.AcademyName != oldName {
		slug, err := helper.EnsureUniqueSlug(ctl.DB, helper.GenerateSlug(row.AcademyName), "academies", "academy_slug")
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		row.AcademySlug = slug
	}

	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Akademi berhasil diperbarui", d.NewAcademyResponse(&row))
}

func (ctl *AcademyController) UploadLogo(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "File 'logo' wajib diunggah")
	}

	var row m.AcademyModel
	if err := ctl.DB.First(&row, "academy_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Akademi tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	url, err := helper.UploadImageToStorage("academies", fh)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if old := helper.ExtractStoragePath(row.AcademyLogoURL); old != "" {
		if err := helper.DeleteFromStorage("image", old); err != nil {
			log.Println("[WARN] gagal hapus logo lama:", err)
		}
	}

	row.AcademyLogoURL = url
	if err := ctl.DB.Model(&row).Update("academy_logo_url", url).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Logo akademi diperbarui", d.NewAcademyResponse(&row))
}

func (ctl *AcademyController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	res := ctl.DB.Delete(&m.AcademyModel{}, "academy_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Akademi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Akademi berhasil dihapus", fiber.Map{"academy_id": id})
}

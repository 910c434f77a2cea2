// file: internals/features/commerce/products/controller/product_controller.go
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

	d "arenaku_backend/internals/features/commerce/products/dto"
	m "arenaku_backend/internals/features/commerce/products/model"
	helper "arenaku_backend/internals/helpers"
)

type ProductController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProductController(db *gorm.DB, v *validator.Validate) *ProductController {
	return &ProductController{DB: db, Validate: v}
}

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writePGError(c *fiber.Ctx, err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return helper.JsonError(c, http.StatusConflict, "SKU atau slug sudah dipakai.")
		case "23514":
			return helper.JsonError(c, http.StatusBadRequest, "Nilai melanggar constraint (harga/stok negatif).")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params("id")))
}

type listProductQuery struct {
	Active  *bool  `query:"active"`
	InStock *bool  `query:"in_stock"`
	Search  string `query:"search"`
}

func (ctl *ProductController) List(c *fiber.Ctx) error {
	var q listProductQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.ProductModel{})
	if q.Active != nil {
		db = db.Where("product_is_active = ?", *q.Active)
	}
	if q.InStock != nil && *q.InStock {
		db = db.Where("product_stock > 0")
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		db = db.Where("product_name ILIKE ? OR product_sku ILIKE ?", "%"+s+"%", "%"+s+"%")
	}

	p := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.ProductModel
	if err := db.
		Order("product_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	resp := make([]d.ProductResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, d.NewProductResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

func (ctl *ProductController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var row m.ProductModel
	if err := ctl.DB.First(&row, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Produk tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.NewProductResponse(&row))
}

func (ctl *ProductController) Create(c *fiber.Ctx) error {
	var req d.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.ProductModel
	req.ApplyToModel(&row)

	slug, err := helper.EnsureUniqueSlug(ctl.DB, helper.GenerateSlug(row.ProductName), "products", "product_slug")
	if err != nil {
		return writePGError(c, err)
	}
	row.ProductSlug = slug

	if err := ctl.DB.Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Produk berhasil dibuat", d.NewProductResponse(&row))
}

func (ctl *ProductController) Patch(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var req d.PatchProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.ProductModel
	if err := ctl.DB.First(&row, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Produk tidak ditemukan")
		}
		return writePGError(c, err)
	}

	oldName := row.ProductName
	req.ApplyPatch(&row)

	if row.ProductName != oldName {
		slug, err := helper.EnsureUniqueSlug(ctl.DB, helper.GenerateSlug(row.ProductName), "products", "product_slug")
		if err != nil {
			return writePGError(c, err)
		}
		row.ProductSlug = slug
	}

	if err := ctl.DB.Save(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Produk berhasil diperbarui", d.NewProductResponse(&row))
}

func (ctl *ProductController) UploadImage(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "File 'image' wajib diunggah")
	}

	var row m.ProductModel
	if err := ctl.DB.First(&row, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Produk tidak ditemukan")
		}
		return writePGError(c, err)
	}

	url, err := helper.UploadImageToStorage("products", fh)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if old := helper.ExtractStoragePath(row.ProductImageURL); old != "" {
		if err := helper.DeleteFromStorage("image", old); err != nil {
			log.Println("[WARN] gagal hapus gambar lama:", err)
		}
	}

	row.ProductImageURL = url
	if err := ctl.DB.Model(&row).Update("product_image_url", url).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Gambar produk diperbarui", d.NewProductResponse(&row))
}

func (ctl *ProductController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	res := ctl.DB.Delete(&m.ProductModel{}, "product_id = ?", id)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Produk tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Produk berhasil dihapus", fiber.Map{"product_id": id})
}

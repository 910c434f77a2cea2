// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "arenaku_backend/internals/features/notifications/dto"
	m "arenaku_backend/internals/features/notifications/model"
	helper "arenaku_backend/internals/helpers"
	helperAuth "arenaku_backend/internals/helpers/auth"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB, v *validator.Validate) *NotificationController {
	return &NotificationController{DB: db, Validate: v}
}

/* =========================
   POST / (admin): kirim notifikasi manual
   ========================= */

func (ctl *NotificationController) Create(c *fiber.Ctx) error {
	var req d.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Notifikasi berhasil dikirim", d.NewNotificationResponse(row))
}

/* =========================
   GET /me: notifikasi milik user login
   ========================= */

type listNotificationQuery struct {
	Unread *bool `query:"unread"`
	Type   *int  `query:"type"`
}

func (ctl *NotificationController) ListMine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var q listNotificationQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.NotificationModel{}).Where("notification_user_id = ?", userID)
	if q.Unread != nil && *q.Unread {
		db = db.Where("notification_is_read = ?", false)
	}
	if q.Type != nil {
		db = db.Where("notification_type = ?", *q.Type)
	}

	p := helper.ResolvePaging(c, 25, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.NotificationModel
	if err := db.
		Order("notification_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	resp := make([]d.NotificationResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, d.NewNotificationResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

/* =========================
   PATCH /:id/read & PATCH /read-all
   ========================= */

func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var row m.NotificationModel
	if err := ctl.DB.
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Notifikasi tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if !row.NotificationIsRead {
		now := time.Now()
		row.NotificationIsRead = true
		row.NotificationReadAt = &now
		if err := ctl.DB.Save(&row).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonUpdated(c, "Notifikasi ditandai dibaca", d.NewNotificationResponse(&row))
}

func (ctl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	now := time.Now()
	res := ctl.DB.Model(&m.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"notification_is_read": true,
			"notification_read_at": now,
		})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	return helper.JsonUpdated(c, "Semua notifikasi ditandai dibaca", fiber.Map{"updated": res.RowsAffected})
}

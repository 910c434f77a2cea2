// file: internals/features/venues/schedules/controller/slot_generation_controller.go
package controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "arenaku_backend/internals/features/venues/schedules/dto"
	m "arenaku_backend/internals/features/venues/schedules/model"
	svc "arenaku_backend/internals/features/venues/schedules/service"
	helper "arenaku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type SlotGenerationController struct {
	DB        *gorm.DB
	Generator *svc.Generator
}

func NewSlotGenerationController(db *gorm.DB, gen *svc.Generator) *SlotGenerationController {
	return &SlotGenerationController{DB: db, Generator: gen}
}

/* =========================
   Generate (persist)
   POST /field-party-slots/generate?field_party_id=&regenerate=
   ========================= */

func (ctl *SlotGenerationController) Generate(c *fiber.Ctx) error {
	fieldPartyID, err := parseUUIDQuery(c, "field_party_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	regenerate := strings.EqualFold(c.Query("regenerate"), "true") || c.Query("regenerate") == "1"

	res, err := ctl.Generator.Generate(c.UserContext(), fieldPartyID, regenerate)
	if err != nil {
		log.Printf("[ERROR] generate slot field_party=%s: %v", fieldPartyID, err)
		return writePGError(c, err)
	}

	if res.DroppedCount > 0 {
		log.Printf("[WARN] generate slot field_party=%s: %d kandidat di-drop tanpa price tier", fieldPartyID, res.DroppedCount)
	}

	// Kontrak: tetap 200 walau konfigurasi tidak ada; cek flag success.
	return c.Status(http.StatusOK).JSON(d.NewGenerateSlotsResponse(res))
}

/* =========================
   Preview (tanpa persist)
   GET /field-party-slots/preview?field_party_id=&date=YYYY-MM-DD
   ========================= */

func (ctl *SlotGenerationController) Preview(c *fiber.Ctx) error {
	fieldPartyID, err := parseUUIDQuery(c, "field_party_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	dateStr := strings.TrimSpace(c.Query("date"))
	if dateStr == "" {
		return helper.JsonError(c, http.StatusBadRequest, "date is required (YYYY-MM-DD)")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "date invalid (YYYY-MM-DD)")
	}

	res, err := ctl.Generator.Preview(c.UserContext(), fieldPartyID, date)
	if err != nil {
		log.Printf("[ERROR] preview slot field_party=%s date=%s: %v", fieldPartyID, dateStr, err)
		return writePGError(c, err)
	}

	return c.Status(http.StatusOK).JSON(d.NewGenerateSlotsResponse(res))
}

/* =========================
   Query: List slot tersimpan
   GET /field-party-slots?field_party_id=&from=&to=
   ========================= */

type listSlotQuery struct {
	FieldPartyID string `query:"field_party_id"`
	From         string `query:"from"` // YYYY-MM-DD
	To           string `query:"to"`   // YYYY-MM-DD
	Booked       *bool  `query:"booked"`
}

func (ctl *SlotGenerationController) List(c *fiber.Ctx) error {
	var q listSlotQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.FieldPartySlotModel{})

	if q.FieldPartyID != "" {
		if _, err := uuid.Parse(q.FieldPartyID); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "field_party_id invalid")
		}
		db = db.Where("field_party_slot_field_party_id = ?", q.FieldPartyID)
	}
	if strings.TrimSpace(q.From) != "" {
		dt, err := time.Parse("2006-01-02", strings.TrimSpace(q.From))
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "from invalid (YYYY-MM-DD)")
		}
		db = db.Where("field_party_slot_date >= ?", dt)
	}
	if strings.TrimSpace(q.To) != "" {
		dt, err := time.Parse("2006-01-02", strings.TrimSpace(q.To))
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "to invalid (YYYY-MM-DD)")
		}
		db = db.Where("field_party_slot_date <= ?", dt)
	}
	if q.Booked != nil {
		db = db.Where("field_party_slot_is_booked = ?", *q.Booked)
	}

	p := helper.ResolvePaging(c, 50, 500)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.FieldPartySlotModel
	if err := db.
		Order("field_party_slot_date ASC, field_party_slot_start_time ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	out := make([]d.FieldPartySlotResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewFieldPartySlotResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(out)))
}

package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	m "arenaku_backend/internals/features/venues/schedules/model"
	svc "arenaku_backend/internals/features/venues/schedules/service"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&m.FieldPartyScheduleModel{}, &m.FieldPartySlotModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	genCtl := NewSlotGenerationController(db, svc.NewGormGenerator(db))

	app := fiber.New()
	app.Post("/field-party-slots/generate", genCtl.Generate)
	app.Get("/field-party-slots/preview", genCtl.Preview)
	app.Get("/field-party-slots", genCtl.List)
	return app, db
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func seedActiveConfig(t *testing.T, db *gorm.DB, fieldPartyID uuid.UUID) {
	t.Helper()
	cfg := m.FieldPartyScheduleModel{
		FieldPartyScheduleFieldPartyID:   fieldPartyID,
		FieldPartyScheduleActiveFrom:     time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		FieldPartyScheduleActiveTo:       time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		FieldPartyScheduleWorkingDays:    mustJSON(t, []int{1}),
		FieldPartyScheduleWorkingPeriods: mustJSON(t, []m.TimeRangeDoc{{Start: "09:00", End: "11:00"}}),
		FieldPartySchedulePriceTiers:     mustJSON(t, []m.PriceTierDoc{{Start: "09:00", End: "11:00", Price: 5000}}),
		FieldPartyScheduleSessionMinutes: 60,
		FieldPartyScheduleIsActive:       true,
	}
	if err := db.Create(&cfg).Error; err != nil {
		t.Fatalf("seed config: %v", err)
	}
}

type generateBody struct {
	Success        bool `json:"success"`
	GeneratedCount int  `json:"generated_count"`
	DroppedCount   int  `json:"dropped_count"`
}

func decodeGenerateBody(t *testing.T, r io.Reader) generateBody {
	t.Helper()
	var body generateBody
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestGenerateEndpoint_BadUUIDRejectedEarly(t *testing.T) {
	app, db := newTestApp(t)

	req := httptest.NewRequest("POST", "/field-party-slots/generate?field_party_id=not-a-uuid", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var n int64
	if err := db.Model(&m.FieldPartySlotModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("rows = %d, want 0 (no work before validation)", n)
	}
}

func TestGenerateEndpoint_MissingConfigStill200(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/field-party-slots/generate?field_party_id="+uuid.NewString(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeGenerateBody(t, resp.Body)
	if body.Success {
		t.Error("expected success=false for missing config")
	}
}

func TestGenerateEndpoint_PersistsAndLists(t *testing.T) {
	app, db := newTestApp(t)
	fpID := uuid.New()
	seedActiveConfig(t, db, fpID)

	req := httptest.NewRequest("POST", "/field-party-slots/generate?field_party_id="+fpID.String()+"&regenerate=true", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeGenerateBody(t, resp.Body)
	if !body.Success || body.GeneratedCount != 2 {
		t.Fatalf("got success=%v generated=%d, want success=true generated=2", body.Success, body.GeneratedCount)
	}

	listReq := httptest.NewRequest("GET", "/field-party-slots?field_party_id="+fpID.String(), nil)
	listResp, err := app.Test(listReq)
	if err != nil {
		t.Fatalf("list request: %v", err)
	}
	if listResp.StatusCode != fiber.StatusOK {
		t.Fatalf("list status = %d, want 200", listResp.StatusCode)
	}

	var listBody struct {
		Data []struct {
			StartTime string `json:"field_party_slot_start_time"`
		} `json:"data"`
	}
	if err := json.NewDecoder(listResp.Body).Decode(&listBody); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listBody.Data) != 2 {
		t.Fatalf("listed slots = %d, want 2", len(listBody.Data))
	}
	if listBody.Data[0].StartTime != "09:00" || listBody.Data[1].StartTime != "10:00" {
		t.Errorf("slot order = %s, %s; want 09:00, 10:00", listBody.Data[0].StartTime, listBody.Data[1].StartTime)
	}
}

func TestPreviewEndpoint_RequiresValidDate(t *testing.T) {
	app, db := newTestApp(t)
	fpID := uuid.New()
	seedActiveConfig(t, db, fpID)

	for _, qs := range []string{
		"field_party_id=" + fpID.String(),
		"field_party_id=" + fpID.String() + "&date=06-01-2025",
	} {
		req := httptest.NewRequest("GET", "/field-party-slots/preview?"+qs, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("query %q: status = %d, want 400", qs, resp.StatusCode)
		}
	}
}

func TestPreviewEndpoint_DoesNotPersist(t *testing.T) {
	app, db := newTestApp(t)
	fpID := uuid.New()
	seedActiveConfig(t, db, fpID)

	req := httptest.NewRequest("GET", "/field-party-slots/preview?field_party_id="+fpID.String()+"&date=2025-01-06", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeGenerateBody(t, resp.Body)
	if !body.Success || body.GeneratedCount != 2 {
		t.Fatalf("got success=%v generated=%d, want success=true generated=2", body.Success, body.GeneratedCount)
	}

	var n int64
	if err := db.Model(&m.FieldPartySlotModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("rows = %d, want 0 after preview", n)
	}
}

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	m "arenaku_backend/internals/features/venues/schedules/model"
)

func openTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func mustDoc(t *testing.T, v any) datatypes.JSON {
	t.Helper()
	doc, err := m.EncodeJSONDoc(v)
	if err != nil {
		t.Fatalf("encode doc: %v", err)
	}
	return doc
}

// seedConfig: Sen–Jum 2025-01-06..2025-01-12, satu periode 09:00–11:00,
// sesi 60 menit tanpa gap, satu tier 5000 → 2 slot per hari kerja.
func seedConfig(t *testing.T, db *gorm.DB, fieldPartyID uuid.UUID, mutate func(*m.FieldPartyScheduleModel)) *m.FieldPartyScheduleModel {
	t.Helper()
	cfg := &m.FieldPartyScheduleModel{
		FieldPartyScheduleFieldPartyID:   fieldPartyID,
		FieldPartyScheduleActiveFrom:     date(2025, 1, 6),
		FieldPartyScheduleActiveTo:       date(2025, 1, 12),
		FieldPartyScheduleWorkingDays:    mustDoc(t, []int{1, 2, 3, 4, 5}),
		FieldPartyScheduleWorkingPeriods: mustDoc(t, []m.TimeRangeDoc{{Start: "09:00", End: "11:00"}}),
		FieldPartySchedulePriceTiers:     mustDoc(t, []m.PriceTierDoc{{Start: "09:00", End: "11:00", Price: 5000}}),
		FieldPartyScheduleSessionMinutes: 60,
		FieldPartyScheduleGapMinutes:     0,
		FieldPartyScheduleIsActive:       true,
	}
	if mutate != nil {
		mutate(cfg)
	}
	if err := db.Create(cfg).Error; err != nil {
		t.Fatalf("seed config: %v", err)
	}
	return cfg
}

func slotCount(t *testing.T, db *gorm.DB, fieldPartyID uuid.UUID) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&m.FieldPartySlotModel{}).
		Where("field_party_slot_field_party_id = ?", fieldPartyID).
		Count(&n).Error; err != nil {
		t.Fatalf("count slots: %v", err)
	}
	return n
}

func TestGenerate_PersistsExpandedWindow(t *testing.T) {
	db := openTestDB(t)
	fpID := uuid.New()
	seedConfig(t, db, fpID, nil)

	gen := NewGormGenerator(db)
	res, err := gen.Generate(context.Background(), fpID, false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, message=%q", res.Message)
	}

	// 5 hari kerja × 2 slot.
	if res.GeneratedCount != 10 {
		t.Errorf("generated = %d, want 10", res.GeneratedCount)
	}
	if res.DroppedCount != 0 {
		t.Errorf("dropped = %d, want 0", res.DroppedCount)
	}
	if got := slotCount(t, db, fpID); got != 10 {
		t.Errorf("db rows = %d, want 10", got)
	}
	if len(res.Records) != 10 {
		t.Fatalf("records = %d, want 10", len(res.Records))
	}
	for _, s := range res.Records {
		if s.FieldPartySlotPrice != 5000 {
			t.Errorf("slot %s %s price = %v, want 5000", s.FieldPartySlotDate.Format("2006-01-02"), s.FieldPartySlotStartTime, s.FieldPartySlotPrice)
		}
		if s.FieldPartySlotIsBooked || s.FieldPartySlotIsPaid {
			t.Error("fresh slot must start unbooked and unpaid")
		}
	}
}

func TestGenerate_NoActiveConfigIsNormalResult(t *testing.T) {
	db := openTestDB(t)
	fpID := uuid.New()

	gen := NewGormGenerator(db)
	res, err := gen.Generate(context.Background(), fpID, false)
	if err != nil {
		t.Fatalf("expected no error for missing config, got %v", err)
	}
	if res.Success {
		t.Fatal("expected Success=false for missing config")
	}
	if got := slotCount(t, db, fpID); got != 0 {
		t.Errorf("db rows = %d, want 0", got)
	}
}

func TestGenerate_InactiveConfigNotPicked(t *testing.T) {
	db := openTestDB(t)
	fpID := uuid.New()
	seedConfig(t, db, fpID, func(c *m.FieldPartyScheduleModel) {
		c.FieldPartyScheduleIsActive = false
	})

	gen := NewGormGenerator(db)
	res, err := gen.Generate(context.Background(), fpID, false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Success {
		t.Fatal("inactive config must not be used")
	}
}

func TestGenerate_RegenerateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	fpID := uuid.New()
	seedConfig(t, db, fpID, nil)

	gen := NewGormGenerator(db)
	ctx := context.Background()

	if _, err := gen.Generate(ctx, fpID, true); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	// Tandai satu slot booked lalu regenerate: slot lama — termasuk yang
	// booked — harus ikut terhapus dan diganti batch baru.
	if err := db.Model(&m.FieldPartySlotModel{}).
		Where("field_party_slot_field_party_id = ?", fpID).
		Limit(1).
		Update("field_party_slot_is_booked", true).Error; err != nil {
		t.Fatalf("mark booked: %v", err)
	}

	res, err := gen.Generate(ctx, fpID, true)
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if res.GeneratedCount != 10 {
		t.Errorf("generated = %d, want 10", res.GeneratedCount)
	}
	if got := slotCount(t, db, fpID); got != 10 {
		t.Errorf("db rows after regenerate = %d, want 10 (no duplicates)", got)
	}

	var booked int64
	if err := db.Model(&m.FieldPartySlotModel{}).
		Where("field_party_slot_field_party_id = ? AND field_party_slot_is_booked = ?", fpID, true).
		Count(&booked).Error; err != nil {
		t.Fatalf("count booked: %v", err)
	}
	if booked != 0 {
		t.Errorf("booked slots after regenerate = %d, want 0", booked)
	}
}

func TestReplaceSlots_FailedBatchRollsBack(t *testing.T) {
	db := openTestDB(t)
	fpID := uuid.New()
	cfg := seedConfig(t, db, fpID, nil)

	gen := NewGormGenerator(db)
	ctx := context.Background()
	if _, err := gen.Generate(ctx, fpID, false); err != nil {
		t.Fatalf("seed generate: %v", err)
	}
	if got := slotCount(t, db, fpID); got != 10 {
		t.Fatalf("db rows = %d, want 10 before failure case", got)
	}

	var existing m.FieldPartySlotModel
	if err := db.Where("field_party_slot_field_party_id = ?", fpID).First(&existing).Error; err != nil {
		t.Fatalf("load existing slot: %v", err)
	}

	// Slot pertama valid; slot kedua pakai PK slot lama → insert batch gagal
	// dan SEMUA isi batch harus batal, termasuk slot pertama.
	freshID := uuid.New()
	batch := []m.FieldPartySlotModel{
		{
			FieldPartySlotID:           freshID,
			FieldPartySlotFieldPartyID: fpID,
			FieldPartySlotScheduleID:   cfg.FieldPartyScheduleID,
			FieldPartySlotDate:         date(2025, 1, 13),
			FieldPartySlotStartTime:    "09:00",
			FieldPartySlotEndTime:      "10:00",
			FieldPartySlotPrice:        5000,
		},
		{
			FieldPartySlotID:           existing.FieldPartySlotID,
			FieldPartySlotFieldPartyID: fpID,
			FieldPartySlotScheduleID:   cfg.FieldPartyScheduleID,
			FieldPartySlotDate:         date(2025, 1, 13),
			FieldPartySlotStartTime:    "10:00",
			FieldPartySlotEndTime:      "11:00",
			FieldPartySlotPrice:        5000,
		},
	}

	store := &GormSlotStore{DB: db}
	if _, err := store.ReplaceSlots(ctx, fpID, cfg.FieldPartyScheduleID, false, batch); err == nil {
		t.Fatal("expected error for duplicate primary key in batch")
	}

	if got := slotCount(t, db, fpID); got != 10 {
		t.Errorf("db rows after failed batch = %d, want 10 (old slots intact)", got)
	}
	var leaked int64
	if err := db.Model(&m.FieldPartySlotModel{}).
		Where("field_party_slot_id = ?", freshID).
		Count(&leaked).Error; err != nil {
		t.Fatalf("count leaked row: %v", err)
	}
	if leaked != 0 {
		t.Error("row from failed batch committed, want full rollback")
	}
}

func TestGenerate_ConcurrentRegenerateSerialized(t *testing.T) {
	db := openTestDB(t)
	fpID := uuid.New()
	seedConfig(t, db, fpID, nil)

	gen := NewGormGenerator(db)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = gen.Generate(ctx, fpID, true)
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: %v", i, err)
		}
	}

	// Dua regenerate bersamaan harus berakhir dengan tepat satu set slot:
	// tidak dobel, tidak ada yang hilang.
	if got := slotCount(t, db, fpID); got != 10 {
		t.Errorf("db rows = %d, want exactly 10", got)
	}

	var rows []m.FieldPartySlotModel
	if err := db.Where("field_party_slot_field_party_id = ?", fpID).Find(&rows).Error; err != nil {
		t.Fatalf("load slots: %v", err)
	}
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		key := r.FieldPartySlotDate.Format("2006-01-02") + " " + r.FieldPartySlotStartTime
		if seen[key] {
			t.Errorf("duplicate slot %s", key)
		}
		seen[key] = true
	}
}

func TestGenerate_SpanGuard(t *testing.T) {
	db := openTestDB(t)
	fpID := uuid.New()
	seedConfig(t, db, fpID, func(c *m.FieldPartyScheduleModel) {
		c.FieldPartyScheduleActiveTo = c.FieldPartyScheduleActiveFrom.AddDate(2, 0, 0)
	})

	gen := NewGormGenerator(db)
	if _, err := gen.Generate(context.Background(), fpID, false); err == nil {
		t.Fatal("expected error for window longer than the span guard")
	}
	if got := slotCount(t, db, fpID); got != 0 {
		t.Errorf("db rows = %d, want 0 after rejected run", got)
	}
}

func TestGenerate_InvalidSessionMinutes(t *testing.T) {
	db := openTestDB(t)
	fpID := uuid.New()
	seedConfig(t, db, fpID, func(c *m.FieldPartyScheduleModel) {
		c.FieldPartyScheduleSessionMinutes = 0
	})

	gen := NewGormGenerator(db)
	if _, err := gen.Generate(context.Background(), fpID, false); err == nil {
		t.Fatal("expected error for session_minutes = 0")
	}
}

func TestPreview_NeverWrites(t *testing.T) {
	db := openTestDB(t)
	fpID := uuid.New()
	seedConfig(t, db, fpID, nil)

	gen := NewGormGenerator(db)
	res, err := gen.Preview(context.Background(), fpID, date(2025, 1, 6))
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, message=%q", res.Message)
	}
	if res.GeneratedCount != 2 {
		t.Errorf("preview slots = %d, want 2", res.GeneratedCount)
	}
	if got := slotCount(t, db, fpID); got != 0 {
		t.Errorf("preview persisted %d rows, want 0", got)
	}
}

func TestPreview_DatePassesThroughFilters(t *testing.T) {
	db := openTestDB(t)
	fpID := uuid.New()
	seedConfig(t, db, fpID, func(c *m.FieldPartyScheduleModel) {
		c.FieldPartyScheduleExcludedDates = mustDoc(t, []string{"2025-01-07"})
	})

	gen := NewGormGenerator(db)
	ctx := context.Background()

	cases := []struct {
		name string
		d    time.Time
	}{
		{"outside active window", date(2025, 2, 1)},
		{"non working day", date(2025, 1, 11)}, // Sabtu
		{"excluded date", date(2025, 1, 7)},
	}
	for _, tc := range cases {
		res, err := gen.Preview(ctx, fpID, tc.d)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if !res.Success {
			t.Errorf("%s: expected success with zero slots", tc.name)
		}
		if res.GeneratedCount != 0 || len(res.Records) != 0 {
			t.Errorf("%s: got %d slots, want 0", tc.name, res.GeneratedCount)
		}
	}
}

func TestGenerate_BreakAndDropReporting(t *testing.T) {
	db := openTestDB(t)
	fpID := uuid.New()
	// Satu hari kerja saja; break memakan slot kedua, tier hanya menutup
	// slot pertama dari periode sore → satu kandidat drop tanpa tier.
	seedConfig(t, db, fpID, func(c *m.FieldPartyScheduleModel) {
		c.FieldPartyScheduleActiveTo = c.FieldPartyScheduleActiveFrom
		c.FieldPartyScheduleWorkingPeriods = mustDoc(t, []m.TimeRangeDoc{
			{Start: "09:00", End: "11:00"},
			{Start: "13:00", End: "15:00"},
		})
		c.FieldPartyScheduleBreakPeriods = mustDoc(t, []m.TimeRangeDoc{{Start: "10:00", End: "11:00"}})
		c.FieldPartySchedulePriceTiers = mustDoc(t, []m.PriceTierDoc{
			{Start: "09:00", End: "11:00", Price: 5000},
			{Start: "13:00", End: "14:00", Price: 8000},
		})
	})

	gen := NewGormGenerator(db)
	res, err := gen.Generate(context.Background(), fpID, false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// Pagi: 09:00–10:00 lolos, 10:00–11:00 kena break.
	// Sore: 13:00–14:00 lolos, 14:00–15:00 tanpa tier → dropped.
	if res.GeneratedCount != 2 {
		t.Errorf("generated = %d, want 2", res.GeneratedCount)
	}
	if res.DroppedCount != 1 {
		t.Errorf("dropped = %d, want 1", res.DroppedCount)
	}
}

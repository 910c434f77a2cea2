// file: internals/features/venues/schedules/service/materializer.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "arenaku_backend/internals/features/venues/schedules/model"
)

// Batas pengaman: konfigurasi dengan rentang tanggal lebih dari ini ditolak
// sebelum slicing, supaya satu konfigurasi salah tidak bikin batch raksasa.
const maxScheduleDays = 366

const defaultBatchSize = 500

type uuidPair struct {
	fieldParty uuid.UUID
	schedule   uuid.UUID
}

/* =========================
   Hasil generate/preview
========================= */

type GenerateResult struct {
	Success        bool                    `json:"success"`
	Message        string                  `json:"message"`
	GeneratedCount int                     `json:"generated_count"`
	DroppedCount   int                     `json:"dropped_count"`
	Records        []m.FieldPartySlotModel `json:"records"`
}

/* =========================
   Boundary persistensi
========================= */

// SlotStore memisahkan generator dari detail persistensi.
type SlotStore interface {
	// LoadActiveConfig mengembalikan gorm.ErrRecordNotFound bila field party
	// tidak punya konfigurasi aktif.
	LoadActiveConfig(ctx context.Context, fieldPartyID uuid.UUID) (*m.FieldPartyScheduleModel, error)

	// ReplaceSlots menyimpan batch dalam SATU transaksi. Bila regenerate=true,
	// semua slot lama pasangan (fieldPartyID, scheduleID) dihapus dulu —
	// termasuk yang sudah booked/paid — di transaksi yang sama.
	ReplaceSlots(ctx context.Context, fieldPartyID, scheduleID uuid.UUID, regenerate bool, batch []m.FieldPartySlotModel) (int, error)
}

type GormSlotStore struct{ DB *gorm.DB }

func (s *GormSlotStore) LoadActiveConfig(ctx context.Context, fieldPartyID uuid.UUID) (*m.FieldPartyScheduleModel, error) {
	var cfg m.FieldPartyScheduleModel
	err := s.DB.WithContext(ctx).
		Where("field_party_schedule_field_party_id = ? AND field_party_schedule_is_active = ?", fieldPartyID, true).
		Order("field_party_schedule_created_at DESC").
		First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *GormSlotStore) ReplaceSlots(ctx context.Context, fieldPartyID, scheduleID uuid.UUID, regenerate bool, batch []m.FieldPartySlotModel) (int, error) {
	inserted := 0
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if regenerate {
			// Hard delete tanpa guard booked/paid — caller sudah opt-in eksplisit.
			if err := tx.
				Where("field_party_slot_field_party_id = ? AND field_party_slot_schedule_id = ?", fieldPartyID, scheduleID).
				Delete(&m.FieldPartySlotModel{}).Error; err != nil {
				return err
			}
		}
		if len(batch) == 0 {
			return nil
		}
		res := tx.CreateInBatches(batch, defaultBatchSize)
		if res.Error != nil {
			return res.Error
		}
		inserted = len(batch)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

/* =========================
   Generator
========================= */

type Generator struct {
	Store SlotStore

	// Serialisasi generate per field party: dua generate bersamaan untuk
	// resource yang sama balapan delete-then-insert. Map ini tumbuh satu
	// entry per field party dan tidak pernah dievict — batas atasnya jumlah
	// field party di instance, bukan jumlah request.
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewGenerator(store SlotStore) *Generator {
	return &Generator{Store: store, locks: map[uuid.UUID]*sync.Mutex{}}
}

func NewGormGenerator(db *gorm.DB) *Generator {
	return NewGenerator(&GormSlotStore{DB: db})
}

func (g *Generator) lockFor(fieldPartyID uuid.UUID) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.locks[fieldPartyID]
	if !ok {
		l = &sync.Mutex{}
		g.locks[fieldPartyID] = l
	}
	return l
}

/* =========================
   Generate (persist)
========================= */

// Generate memuat konfigurasi aktif, mengekspansi seluruh jendela aktif jadi
// slot konkret, lalu menyimpannya satu batch transaksional. Konfigurasi tidak
// ada = hasil normal ber-flag Success=false, bukan error.
func (g *Generator) Generate(ctx context.Context, fieldPartyID uuid.UUID, regenerate bool) (*GenerateResult, error) {
	l := g.lockFor(fieldPartyID)
	l.Lock()
	defer l.Unlock()

	cfg, err := g.Store.LoadActiveConfig(ctx, fieldPartyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &GenerateResult{
			Success: false,
			Message: "Konfigurasi jadwal aktif tidak ditemukan",
			Records: []m.FieldPartySlotModel{},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	rules, err := decodeRules(cfg)
	if err != nil {
		return nil, err
	}
	if err := guardSpan(cfg); err != nil {
		return nil, err
	}

	ids := uuidPair{fieldParty: fieldPartyID, schedule: cfg.FieldPartyScheduleID}
	dates := EnumerateWorkingDates(
		cfg.FieldPartyScheduleActiveFrom,
		cfg.FieldPartyScheduleActiveTo,
		rules.workingDays,
		rules.excludedDates,
	)

	all := make([]m.FieldPartySlotModel, 0, 256)
	dropped := 0
	for _, d := range dates {
		for _, p := range rules.workingPeriods {
			slots, dr := sliceDay(d, p, rules, ids)
			all = append(all, slots...)
			dropped += dr
		}
	}

	count, err := g.Store.ReplaceSlots(ctx, fieldPartyID, cfg.FieldPartyScheduleID, regenerate, all)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		Success:        true,
		Message:        fmt.Sprintf("Berhasil generate %d slot", count),
		GeneratedCount: count,
		DroppedCount:   dropped,
		Records:        all,
	}, nil
}

/* =========================
   Preview (tanpa persist)
========================= */

// Preview menjalankan slicing yang sama persis, dibatasi ke satu tanggal, dan
// TIDAK pernah menulis apa pun. Tanggal di luar jendela aktif / bukan hari
// kerja / masuk daftar libur menghasilkan nol slot (bukan error).
func (g *Generator) Preview(ctx context.Context, fieldPartyID uuid.UUID, date time.Time) (*GenerateResult, error) {
	cfg, err := g.Store.LoadActiveConfig(ctx, fieldPartyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &GenerateResult{
			Success: false,
			Message: "Konfigurasi jadwal aktif tidak ditemukan",
			Records: []m.FieldPartySlotModel{},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	rules, err := decodeRules(cfg)
	if err != nil {
		return nil, err
	}

	ids := uuidPair{fieldParty: fieldPartyID, schedule: cfg.FieldPartyScheduleID}
	dates := EnumerateWorkingDates(date, date, rules.workingDays, rules.excludedDates)

	d := startOfDay(date)
	inWindow := !d.Before(startOfDay(cfg.FieldPartyScheduleActiveFrom)) &&
		!d.After(startOfDay(cfg.FieldPartyScheduleActiveTo))

	all := make([]m.FieldPartySlotModel, 0, 32)
	dropped := 0
	if inWindow && len(dates) == 1 {
		for _, p := range rules.workingPeriods {
			slots, dr := sliceDay(dates[0], p, rules, ids)
			all = append(all, slots...)
			dropped += dr
		}
	}

	return &GenerateResult{
		Success:        true,
		Message:        fmt.Sprintf("Preview %d slot untuk %s", len(all), d.Format("2006-01-02")),
		GeneratedCount: len(all),
		DroppedCount:   dropped,
		Records:        all,
	}, nil
}

func guardSpan(cfg *m.FieldPartyScheduleModel) error {
	from := startOfDay(cfg.FieldPartyScheduleActiveFrom)
	to := startOfDay(cfg.FieldPartyScheduleActiveTo)
	if to.Before(from) {
		// Enumerator akan menghasilkan deretan kosong; bukan error di sini.
		return nil
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days > maxScheduleDays {
		return fmt.Errorf("rentang tanggal terlalu panjang: %d hari (maks %d)", days, maxScheduleDays)
	}
	return nil
}

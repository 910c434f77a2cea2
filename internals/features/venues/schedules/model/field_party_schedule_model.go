// file: internals/features/venues/schedules/model/field_party_schedule_model.go
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   Dokumen JSON di dalam konfigurasi
   ======================================================= */

// TimeRangeDoc: pasangan jam dinding "HH:mm" (start < end, tidak lewat tengah malam)
type TimeRangeDoc struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PriceTierDoc: rentang jam + harga. Slot harus masuk penuh ke satu tier.
type PriceTierDoc struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Price float64 `json:"price"`
}

/* =======================================================
   FieldPartyScheduleModel — map ke tabel field_party_schedules
   Satu field party hanya punya satu konfigurasi aktif;
   historis/soft-deleted boleh lebih dari satu.
   ======================================================= */

type FieldPartyScheduleModel struct {
	// PK
	FieldPartyScheduleID uuid.UUID `json:"field_party_schedule_id" gorm:"type:uuid;primaryKey;column:field_party_schedule_id"`

	// Induk → field party
	FieldPartyScheduleFieldPartyID uuid.UUID `json:"field_party_schedule_field_party_id" gorm:"type:uuid;not null;index;column:field_party_schedule_field_party_id"`

	// Jendela tanggal aktif (inklusif)
	FieldPartyScheduleActiveFrom time.Time `json:"field_party_schedule_active_from" gorm:"type:date;not null;column:field_party_schedule_active_from"`
	FieldPartyScheduleActiveTo   time.Time `json:"field_party_schedule_active_to" gorm:"type:date;not null;column:field_party_schedule_active_to"`

	// Dokumen JSON: hari kerja (ISO 1..7), tanggal libur, jam buka, jam istirahat, tier harga
	FieldPartyScheduleWorkingDays    datatypes.JSON `json:"field_party_schedule_working_days" gorm:"not null;column:field_party_schedule_working_days"`
	FieldPartyScheduleExcludedDates  datatypes.JSON `json:"field_party_schedule_excluded_dates" gorm:"column:field_party_schedule_excluded_dates"`
	FieldPartyScheduleWorkingPeriods datatypes.JSON `json:"field_party_schedule_working_periods" gorm:"not null;column:field_party_schedule_working_periods"`
	FieldPartyScheduleBreakPeriods   datatypes.JSON `json:"field_party_schedule_break_periods" gorm:"column:field_party_schedule_break_periods"`
	FieldPartySchedulePriceTiers     datatypes.JSON `json:"field_party_schedule_price_tiers" gorm:"not null;column:field_party_schedule_price_tiers"`

	// Parameter slicing
	FieldPartyScheduleSessionMinutes int `json:"field_party_schedule_session_minutes" gorm:"not null;column:field_party_schedule_session_minutes"`
	FieldPartyScheduleGapMinutes     int `json:"field_party_schedule_gap_minutes" gorm:"not null;default:0;column:field_party_schedule_gap_minutes"`

	// Dipakai subsistem booking, bukan oleh generator
	FieldPartyScheduleMaxConcurrentBookings int `json:"field_party_schedule_max_concurrent_bookings" gorm:"not null;default:1;column:field_party_schedule_max_concurrent_bookings"`

	FieldPartyScheduleIsActive bool `json:"field_party_schedule_is_active" gorm:"not null;default:true;column:field_party_schedule_is_active"`

	// Timestamps eksplisit (auto create/update)
	FieldPartyScheduleCreatedAt time.Time      `json:"field_party_schedule_created_at" gorm:"column:field_party_schedule_created_at;not null;autoCreateTime"`
	FieldPartyScheduleUpdatedAt time.Time      `json:"field_party_schedule_updated_at" gorm:"column:field_party_schedule_updated_at;not null;autoUpdateTime"`
	FieldPartyScheduleDeletedAt gorm.DeletedAt `json:"field_party_schedule_deleted_at" gorm:"column:field_party_schedule_deleted_at;index"`
}

func (FieldPartyScheduleModel) TableName() string {
	return "field_party_schedules"
}

func (m *FieldPartyScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.FieldPartyScheduleID == uuid.Nil {
		m.FieldPartyScheduleID = uuid.New()
	}
	return nil
}

/* =======================================================
   Decoder dokumen JSON → bentuk typed untuk service
   ======================================================= */

func (m *FieldPartyScheduleModel) WorkingDayList() ([]int, error) {
	var days []int
	if len(m.FieldPartyScheduleWorkingDays) == 0 {
		return days, nil
	}
	if err := json.Unmarshal(m.FieldPartyScheduleWorkingDays, &days); err != nil {
		return nil, fmt.Errorf("working_days invalid: %w", err)
	}
	for _, d := range days {
		if d < 1 || d > 7 {
			return nil, fmt.Errorf("working_days: %d di luar 1..7", d)
		}
	}
	return days, nil
}

func (m *FieldPartyScheduleModel) ExcludedDateList() ([]time.Time, error) {
	var raw []string
	if len(m.FieldPartyScheduleExcludedDates) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(m.FieldPartyScheduleExcludedDates, &raw); err != nil {
		return nil, fmt.Errorf("excluded_dates invalid: %w", err)
	}
	out := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("excluded_dates: %q bukan YYYY-MM-DD", s)
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *FieldPartyScheduleModel) WorkingPeriodList() ([]TimeRangeDoc, error) {
	return decodeRanges(m.FieldPartyScheduleWorkingPeriods, "working_periods")
}

func (m *FieldPartyScheduleModel) BreakPeriodList() ([]TimeRangeDoc, error) {
	return decodeRanges(m.FieldPartyScheduleBreakPeriods, "break_periods")
}

func (m *FieldPartyScheduleModel) PriceTierList() ([]PriceTierDoc, error) {
	if len(m.FieldPartySchedulePriceTiers) == 0 {
		return nil, nil
	}
	var tiers []PriceTierDoc
	if err := json.Unmarshal(m.FieldPartySchedulePriceTiers, &tiers); err != nil {
		return nil, fmt.Errorf("price_tiers invalid: %w", err)
	}
	return tiers, nil
}

func decodeRanges(doc datatypes.JSON, field string) ([]TimeRangeDoc, error) {
	if len(doc) == 0 {
		return nil, nil
	}
	var rs []TimeRangeDoc
	if err := json.Unmarshal(doc, &rs); err != nil {
		return nil, fmt.Errorf("%s invalid: %w", field, err)
	}
	return rs, nil
}

/* =======================================================
   Encoder (dipakai DTO saat create/update)
   ======================================================= */

func EncodeJSONDoc(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, errors.New("dokumen kosong")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

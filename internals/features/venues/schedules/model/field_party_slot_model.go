// file: internals/features/venues/schedules/model/field_party_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   FieldPartySlotModel — map ke tabel field_party_slots
   Satu-satunya output generator. Setelah dibuat, generator
   tidak pernah mengubahnya; flag booked/paid milik subsistem
   booking.
   ======================================================= */

type FieldPartySlotModel struct {
	// PK
	FieldPartySlotID uuid.UUID `json:"field_party_slot_id" gorm:"type:uuid;primaryKey;column:field_party_slot_id"`

	// Back-reference
	FieldPartySlotFieldPartyID uuid.UUID `json:"field_party_slot_field_party_id" gorm:"type:uuid;not null;index;column:field_party_slot_field_party_id"`
	FieldPartySlotScheduleID   uuid.UUID `json:"field_party_slot_schedule_id" gorm:"type:uuid;not null;index;column:field_party_slot_schedule_id"`

	// Okurensi konkret
	FieldPartySlotDate      time.Time `json:"field_party_slot_date" gorm:"type:date;not null;index;column:field_party_slot_date"`
	FieldPartySlotStartTime string    `json:"field_party_slot_start_time" gorm:"type:varchar(5);not null;column:field_party_slot_start_time"` // "HH:mm"
	FieldPartySlotEndTime   string    `json:"field_party_slot_end_time" gorm:"type:varchar(5);not null;column:field_party_slot_end_time"`     // "HH:mm"

	// Harga hasil resolve tier
	FieldPartySlotPrice float64 `json:"field_party_slot_price" gorm:"not null;column:field_party_slot_price"`

	// Status booking (selalu false saat generate)
	FieldPartySlotIsBooked bool `json:"field_party_slot_is_booked" gorm:"not null;default:false;column:field_party_slot_is_booked"`
	FieldPartySlotIsPaid   bool `json:"field_party_slot_is_paid" gorm:"not null;default:false;column:field_party_slot_is_paid"`

	FieldPartySlotCreatedAt time.Time `json:"field_party_slot_created_at" gorm:"column:field_party_slot_created_at;not null;autoCreateTime"`
	FieldPartySlotUpdatedAt time.Time `json:"field_party_slot_updated_at" gorm:"column:field_party_slot_updated_at;not null;autoUpdateTime"`
}

func (FieldPartySlotModel) TableName() string {
	return "field_party_slots"
}

func (m *FieldPartySlotModel) BeforeCreate(tx *gorm.DB) error {
	if m.FieldPartySlotID == uuid.Nil {
		m.FieldPartySlotID = uuid.New()
	}
	return nil
}

// file: internals/features/venues/field_parties/model/field_party_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   FieldPartyModel — map ke tabel field_parties
   Satu field party = satu lapangan yang bisa dibooking.
   ======================================================= */

type FieldPartyModel struct {
	// PK
	FieldPartyID uuid.UUID `json:"field_party_id" gorm:"type:uuid;primaryKey;column:field_party_id"`

	// Induk → akademi pengelola (opsional, lapangan bisa berdiri sendiri)
	FieldPartyAcademyID *uuid.UUID `json:"field_party_academy_id,omitempty" gorm:"type:uuid;index;column:field_party_academy_id"`

	// Identitas
	FieldPartyName string `json:"field_party_name" gorm:"type:varchar(100);not null;column:field_party_name"`
	FieldPartySlug string `json:"field_party_slug" gorm:"type:varchar(120);not null;uniqueIndex;column:field_party_slug"`

	// Atribut lapangan
	FieldPartySportType string         `json:"field_party_sport_type" gorm:"type:varchar(50);not null;column:field_party_sport_type"` // futsal, badminton, basket, ...
	FieldPartySurface   string         `json:"field_party_surface" gorm:"type:varchar(50);column:field_party_surface"`                // vinyl, rumput sintetis, ...
	FieldPartyIsIndoor  bool           `json:"field_party_is_indoor" gorm:"not null;default:false;column:field_party_is_indoor"`
	FieldPartyFacilities pq.StringArray `json:"field_party_facilities" gorm:"type:text[];column:field_party_facilities"` // toilet, parkir, kantin, ...

	// Harga default bila tier konfigurasi tidak menutup
	FieldPartyDefaultPrice float64 `json:"field_party_default_price" gorm:"not null;default:0;column:field_party_default_price"`

	FieldPartyDescription string `json:"field_party_description" gorm:"type:text;column:field_party_description"`
	FieldPartyImageURL    string `json:"field_party_image_url" gorm:"type:text;column:field_party_image_url"`

	FieldPartyIsActive bool `json:"field_party_is_active" gorm:"not null;default:true;column:field_party_is_active"`

	FieldPartyCreatedAt time.Time      `json:"field_party_created_at" gorm:"column:field_party_created_at;not null;autoCreateTime"`
	FieldPartyUpdatedAt time.Time      `json:"field_party_updated_at" gorm:"column:field_party_updated_at;not null;autoUpdateTime"`
	FieldPartyDeletedAt gorm.DeletedAt `json:"field_party_deleted_at" gorm:"column:field_party_deleted_at;index"`
}

func (FieldPartyModel) TableName() string {
	return "field_parties"
}

func (m *FieldPartyModel) BeforeCreate(tx *gorm.DB) error {
	if m.FieldPartyID == uuid.Nil {
		m.FieldPartyID = uuid.New()
	}
	return nil
}

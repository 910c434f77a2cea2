// file: internals/features/academies/academies/model/academy_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademyModel: pengelola venue/lapangan, map ke tabel academies.
type AcademyModel struct {
	AcademyID uuid.UUID `json:"academy_id" gorm:"type:uuid;primaryKey;column:academy_id"`

	AcademyName string `json:"academy_name" gorm:"type:varchar(100);not null;column:academy_name"`
	AcademySlug string `json:"academy_slug" gorm:"type:varchar(120);not null;uniqueIndex;column:academy_slug"`

	AcademyDescription  string `json:"academy_description" gorm:"type:text;column:academy_description"`
	AcademyContactPhone string `json:"academy_contact_phone" gorm:"type:varchar(30);column:academy_contact_phone"`
	AcademyContactEmail string `json:"academy_contact_email" gorm:"type:varchar(100);column:academy_contact_email"`
	AcademyAddress      string `json:"academy_address" gorm:"type:text;column:academy_address"`
	AcademyLogoURL      string `json:"academy_logo_url" gorm:"type:text;column:academy_logo_url"`

	AcademyIsActive bool `json:"academy_is_active" gorm:"not null;default:true;column:academy_is_active"`

	AcademyCreatedAt time.Time      `json:"academy_created_at" gorm:"column:academy_created_at;not null;autoCreateTime"`
	AcademyUpdatedAt time.Time      `json:"academy_updated_at" gorm:"column:academy_updated_at;not null;autoUpdateTime"`
	AcademyDeletedAt gorm.DeletedAt `json:"academy_deleted_at" gorm:"column:academy_deleted_at;index"`
}

func (AcademyModel) TableName() string {
	return "academies"
}

func (m *AcademyModel) BeforeCreate(tx *gorm.DB) error {
	if m.AcademyID == uuid.Nil {
		m.AcademyID = uuid.New()
	}
	return nil
}

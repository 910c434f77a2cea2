// file: internals/features/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Tipe notifikasi di-handle enum di sisi kode.
const (
	NotificationTypeSystem   = 1
	NotificationTypeOrder    = 2
	NotificationTypeSchedule = 3
	NotificationTypePromo    = 4
)

type NotificationModel struct {
	NotificationID uuid.UUID `json:"notification_id" gorm:"type:uuid;primaryKey;column:notification_id"`

	NotificationUserID uuid.UUID `json:"notification_user_id" gorm:"type:uuid;not null;index;column:notification_user_id"`

	NotificationTitle       string `json:"notification_title" gorm:"type:varchar(255);not null;column:notification_title"`
	NotificationDescription string `json:"notification_description" gorm:"type:text;column:notification_description"`
	NotificationType        int    `json:"notification_type" gorm:"not null;column:notification_type"`

	// Payload bebas per tipe (order_code, field_party_id, dst).
	NotificationPayload datatypes.JSONMap `json:"notification_payload" gorm:"column:notification_payload"`

	NotificationIsRead bool       `json:"notification_is_read" gorm:"not null;default:false;column:notification_is_read"`
	NotificationReadAt *time.Time `json:"notification_read_at,omitempty" gorm:"column:notification_read_at"`

	NotificationCreatedAt time.Time `json:"notification_created_at" gorm:"column:notification_created_at;not null;autoCreateTime"`
	NotificationUpdatedAt time.Time `json:"notification_updated_at" gorm:"column:notification_updated_at;not null;autoUpdateTime"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}

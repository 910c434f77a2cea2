// file: internals/features/notifications/dto/notification_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "arenaku_backend/internals/features/notifications/model"
)

type CreateNotificationRequest struct {
	UserID      string                 `json:"notification_user_id" validate:"required,uuid"`
	Title       string                 `json:"notification_title" validate:"required,min=3,max=255"`
	Description string                 `json:"notification_description"`
	Type        int                    `json:"notification_type" validate:"required,min=1,max=4"`
	Payload     map[string]interface{} `json:"notification_payload"`
}

func (r *CreateNotificationRequest) Validate(v *validator.Validate) error {
	r.Title = strings.TrimSpace(r.Title)
	return v.Struct(r)
}

func (r *CreateNotificationRequest) ToModel() (*m.NotificationModel, error) {
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return nil, err
	}
	return &m.NotificationModel{
		NotificationUserID:      userID,
		NotificationTitle:       r.Title,
		NotificationDescription: strings.TrimSpace(r.Description),
		NotificationType:        r.Type,
		NotificationPayload:     datatypes.JSONMap(r.Payload),
	}, nil
}

type NotificationResponse struct {
	NotificationID uuid.UUID              `json:"notification_id"`
	UserID         uuid.UUID              `json:"notification_user_id"`
	Title          string                 `json:"notification_title"`
	Description    string                 `json:"notification_description,omitempty"`
	Type           int                    `json:"notification_type"`
	Payload        map[string]interface{} `json:"notification_payload,omitempty"`
	IsRead         bool                   `json:"notification_is_read"`
	ReadAt         *time.Time             `json:"notification_read_at,omitempty"`
	CreatedAt      time.Time              `json:"notification_created_at"`
}

func NewNotificationResponse(src *m.NotificationModel) NotificationResponse {
	return NotificationResponse{
		NotificationID: src.NotificationID,
		UserID:         src.NotificationUserID,
		Title:          src.NotificationTitle,
		Description:    src.NotificationDescription,
		Type:           src.NotificationType,
		Payload:        src.NotificationPayload,
		IsRead:         src.NotificationIsRead,
		ReadAt:         src.NotificationReadAt,
		CreatedAt:      src.NotificationCreatedAt,
	}
}

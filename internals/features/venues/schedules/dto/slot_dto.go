// file: internals/features/venues/schedules/dto/slot_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "arenaku_backend/internals/features/venues/schedules/model"
	svc "arenaku_backend/internals/features/venues/schedules/service"
)

/* =========================
   Slot response
========================= */

type FieldPartySlotResponse struct {
	FieldPartySlotID           uuid.UUID `json:"field_party_slot_id"`
	FieldPartySlotFieldPartyID uuid.UUID `json:"field_party_slot_field_party_id"`
	FieldPartySlotScheduleID   uuid.UUID `json:"field_party_slot_schedule_id"`
	FieldPartySlotDate         string    `json:"field_party_slot_date"`       // "YYYY-MM-DD"
	FieldPartySlotStartTime    string    `json:"field_party_slot_start_time"` // "HH:mm"
	FieldPartySlotEndTime      string    `json:"field_party_slot_end_time"`   // "HH:mm"
	FieldPartySlotPrice        float64   `json:"field_party_slot_price"`
	FieldPartySlotIsBooked     bool      `json:"field_party_slot_is_booked"`
	FieldPartySlotIsPaid       bool      `json:"field_party_slot_is_paid"`
	FieldPartySlotCreatedAt    time.Time `json:"field_party_slot_created_at"`
	FieldPartySlotUpdatedAt    time.Time `json:"field_party_slot_updated_at"`
}

func NewFieldPartySlotResponse(src *m.FieldPartySlotModel) FieldPartySlotResponse {
	return FieldPartySlotResponse{
		FieldPartySlotID:           src.FieldPartySlotID,
		FieldPartySlotFieldPartyID: src.FieldPartySlotFieldPartyID,
		FieldPartySlotScheduleID:   src.FieldPartySlotScheduleID,
		FieldPartySlotDate:         src.FieldPartySlotDate.Format(layoutDate),
		FieldPartySlotStartTime:    src.FieldPartySlotStartTime,
		FieldPartySlotEndTime:      src.FieldPartySlotEndTime,
		FieldPartySlotPrice:        src.FieldPartySlotPrice,
		FieldPartySlotIsBooked:     src.FieldPartySlotIsBooked,
		FieldPartySlotIsPaid:       src.FieldPartySlotIsPaid,
		FieldPartySlotCreatedAt:    src.FieldPartySlotCreatedAt,
		FieldPartySlotUpdatedAt:    src.FieldPartySlotUpdatedAt,
	}
}

/* =========================
   Generate / preview response
   Kontrak: HTTP tetap 200 walau zero slot; outcome dilihat dari flag success.
========================= */

type GenerateSlotsResponse struct {
	Success        bool                     `json:"success"`
	Message        string                   `json:"message"`
	GeneratedCount int                      `json:"generated_count"`
	DroppedCount   int                      `json:"dropped_count"`
	Records        []FieldPartySlotResponse `json:"records"`
}

func NewGenerateSlotsResponse(res *svc.GenerateResult) GenerateSlotsResponse {
	out := GenerateSlotsResponse{
		Success:        res.Success,
		Message:        res.Message,
		GeneratedCount: res.GeneratedCount,
		DroppedCount:   res.DroppedCount,
		Records:        make([]FieldPartySlotResponse, 0, len(res.Records)),
	}
	for i := range res.Records {
		out.Records = append(out.Records, NewFieldPartySlotResponse(&res.Records[i]))
	}
	return out
}

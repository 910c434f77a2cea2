// file: internals/features/venues/field_parties/dto/field_party_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "arenaku_backend/internals/features/venues/field_parties/model"
)

/* =========================
   Request: Create
   ========================= */

type CreateFieldPartyRequest struct {
	AcademyID    *string  `json:"field_party_academy_id" validate:"omitempty,uuid"`
	Name         string   `json:"field_party_name" validate:"required,min=3,max=100"`
	SportType    string   `json:"field_party_sport_type" validate:"required,max=50"`
	Surface      string   `json:"field_party_surface" validate:"omitempty,max=50"`
	IsIndoor     *bool    `json:"field_party_is_indoor"`
	Facilities   []string `json:"field_party_facilities" validate:"omitempty,dive,min=1,max=50"`
	DefaultPrice *float64 `json:"field_party_default_price" validate:"omitempty,gte=0"`
	Description  string   `json:"field_party_description"`
	IsActive     *bool    `json:"field_party_is_active"`
}

func (r *CreateFieldPartyRequest) Validate(v *validator.Validate) error {
	r.Name = strings.TrimSpace(r.Name)
	r.SportType = strings.TrimSpace(strings.ToLower(r.SportType))
	r.Surface = strings.TrimSpace(r.Surface)
	return v.Struct(r)
}

// ApplyToModel mengisi model baru; slug diisi caller (butuh akses DB).
func (r *CreateFieldPartyRequest) ApplyToModel(dst *m.FieldPartyModel) error {
	if r.AcademyID != nil && *r.AcademyID != "" {
		id, err := uuid.Parse(*r.AcademyID)
		if err != nil {
			return err
		}
		dst.FieldPartyAcademyID = &id
	}

	dst.FieldPartyName = r.Name
	dst.FieldPartySportType = r.SportType
	dst.FieldPartySurface = r.Surface
	dst.FieldPartyDescription = strings.TrimSpace(r.Description)
	dst.FieldPartyFacilities = r.Facilities

	if r.IsIndoor != nil {
		dst.FieldPartyIsIndoor = *r.IsIndoor
	}
	if r.DefaultPrice != nil {
		dst.FieldPartyDefaultPrice = *r.DefaultPrice
	}

	dst.FieldPartyIsActive = true
	if r.IsActive != nil {
		dst.FieldPartyIsActive = *r.IsActive
	}
	return nil
}

/* =========================
   Request: Patch (partial)
   ========================= */

type PatchFieldPartyRequest struct {
	AcademyID    *string   `json:"field_party_academy_id" validate:"omitempty,uuid"`
	Name         *string   `json:"field_party_name" validate:"omitempty,min=3,max=100"`
	SportType    *string   `json:"field_party_sport_type" validate:"omitempty,max=50"`
	Surface      *string   `json:"field_party_surface" validate:"omitempty,max=50"`
	IsIndoor     *bool     `json:"field_party_is_indoor"`
	Facilities   *[]string `json:"field_party_facilities" validate:"omitempty,dive,min=1,max=50"`
	DefaultPrice *float64  `json:"field_party_default_price" validate:"omitempty,gte=0"`
	Description  *string   `json:"field_party_description"`
	IsActive     *bool     `json:"field_party_is_active"`
}

func (r *PatchFieldPartyRequest) Validate(v *validator.Validate) error {
	if r.Name != nil {
		t := strings.TrimSpace(*r.Name)
		r.Name = &t
	}
	if r.SportType != nil {
		t := strings.TrimSpace(strings.ToLower(*r.SportType))
		r.SportType = &t
	}
	return v.Struct(r)
}

func (r *PatchFieldPartyRequest) ApplyPatch(dst *m.FieldPartyModel) error {
	if r.AcademyID != nil {
		if *r.AcademyID == "" {
			dst.FieldPartyAcademyID = nil
		} else {
			id, err := uuid.Parse(*r.AcademyID)
			if err != nil {
				return err
			}
			dst.FieldPartyAcademyID = &id
		}
	}
	if r.Name != nil {
		dst.FieldPartyName = *r.Name
	}
	if r.SportType != nil {
		dst.FieldPartySportType = *r.SportType
	}
	if r.Surface != nil {
		dst.FieldPartySurface = *r.Surface
	}
	if r.IsIndoor != nil {
		dst.FieldPartyIsIndoor = *r.IsIndoor
	}
	if r.Facilities != nil {
		dst.FieldPartyFacilities = *r.Facilities
	}
	if r.DefaultPrice != nil {
		dst.FieldPartyDefaultPrice = *r.DefaultPrice
	}
	if r.Description != nil {
		dst.FieldPartyDescription = strings.TrimSpace(*r.Description)
	}
	if r.IsActive != nil {
		dst.FieldPartyIsActive = *r.IsActive
	}
	return nil
}

/* =========================
   Response
   ========================= */

type FieldPartyResponse struct {
	FieldPartyID uuid.UUID  `json:"field_party_id"`
	AcademyID    *uuid.UUID `json:"field_party_academy_id,omitempty"`
	Name         string     `json:"field_party_name"`
	Slug         string     `json:"field_party_slug"`
	SportType    string     `json:"field_party_sport_type"`
	Surface      string     `json:"field_party_surface,omitempty"`
	IsIndoor     bool       `json:"field_party_is_indoor"`
	Facilities   []string   `json:"field_party_facilities"`
	DefaultPrice float64    `json:"field_party_default_price"`
	Description  string     `json:"field_party_description,omitempty"`
	ImageURL     string     `json:"field_party_image_url,omitempty"`
	IsActive     bool       `json:"field_party_is_active"`
	CreatedAt    time.Time  `json:"field_party_created_at"`
	UpdatedAt    time.Time  `json:"field_party_updated_at"`
}

func NewFieldPartyResponse(src *m.FieldPartyModel) FieldPartyResponse {
	return FieldPartyResponse{
		FieldPartyID: src.FieldPartyID,
		AcademyID:    src.FieldPartyAcademyID,
		Name:         src.FieldPartyName,
		Slug:         src.FieldPartySlug,
		SportType:    src.FieldPartySportType,
		Surface:      src.FieldPartySurface,
		IsIndoor:     src.FieldPartyIsIndoor,
		Facilities:   src.FieldPartyFacilities,
		DefaultPrice: src.FieldPartyDefaultPrice,
		Description:  src.FieldPartyDescription,
		ImageURL:     src.FieldPartyImageURL,
		IsActive:     src.FieldPartyIsActive,
		CreatedAt:    src.FieldPartyCreatedAt,
		UpdatedAt:    src.FieldPartyUpdatedAt,
	}
}

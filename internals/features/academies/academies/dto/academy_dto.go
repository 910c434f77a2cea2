// file: internals/features/academies/academies/dto/academy_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "arenaku_backend/internals/features/academies/academies/model"
)

type CreateAcademyRequest struct {
	Name         string `json:"academy_name" validate:"required,min=3,max=100"`
	Description  string `json:"academy_description"`
	ContactPhone string `json:"academy_contact_phone" validate:"omitempty,max=30"`
	ContactEmail string `json:"academy_contact_email" validate:"omitempty,email"`
	Address      string `json:"academy_address"`
	IsActive     *bool  `json:"academy_is_active"`
}

func (r *CreateAcademyRequest) Validate(v *validator.Validate) error {
	r.Name = strings.TrimSpace(r.Name)
	r.ContactEmail = strings.TrimSpace(strings.ToLower(r.ContactEmail))
	return v.Struct(r)
}

func (r *CreateAcademyRequest) ApplyToModel(dst *m.AcademyModel) {
	dst.AcademyName = r.Name
	dst.AcademyDescription = strings.TrimSpace(r.Description)
	dst.AcademyContactPhone = strings.TrimSpace(r.ContactPhone)
	dst.AcademyContactEmail = r.ContactEmail
	dst.AcademyAddress = strings.TrimSpace(r.Address)

	dst.AcademyIsActive = true
	if r.IsActive != nil {
		dst.AcademyIsActive = *r.IsActive
	}
}

type PatchAcademyRequest struct {
	Name         *string `json:"academy_name" validate:"omitempty,min=3,max=100"`
	Description  *string `json:"academy_description"`
	ContactPhone *string `json:"academy_contact_phone" validate:"omitempty,max=30"`
	ContactEmail *string `json:"academy_contact_email" validate:"omitempty,email"`
	Address      *string `json:"academy_address"`
	IsActive     *bool   `json:"academy_is_active"`
}

func (r *PatchAcademyRequest) Validate(v *validator.Validate) error {
	if r.Name != nil {
		t := strings.TrimSpace(*r.Name)
		r.Name = &t
	}
	if r.ContactEmail != nil {
		t := strings.TrimSpace(strings.ToLower(*r.ContactEmail))
		r.ContactEmail = &t
	}
	return v.Struct(r)
}

func (r *PatchAcademyRequest) ApplyPatch(dst *m.AcademyModel) {
	if r.Name != nil {
		dst.AcademyName = *r.Name
	}
	if r.Description != nil {
		dst.AcademyDescription = strings.TrimSpace(*r.Description)
	}
	if r.ContactPhone != nil {
		dst.AcademyContactPhone = strings.TrimSpace(*r.ContactPhone)
	}
	if r.ContactEmail != nil {
		dst.AcademyContactEmail = *r.ContactEmail
	}
	if r.Address != nil {
		dst.AcademyAddress = strings.TrimSpace(*r.Address)
	}
	if r.IsActive != nil {
		dst.AcademyIsActive = *r.IsActive
	}
}

type AcademyResponse struct {
	AcademyID    uuid.UUID `json:"academy_id"`
	Name         string    `json:"academy_name"`
	Slug         string    `json:"academy_slug"`
	Description  string    `json:"academy_description,omitempty"`
	ContactPhone string    `json:"academy_contact_phone,omitempty"`
	ContactEmail string    `json:"academy_contact_email,omitempty"`
	Address      string    `json:"academy_address,omitempty"`
	LogoURL      string    `json:"academy_logo_url,omitempty"`
	IsActive     bool      `json:"academy_is_active"`
	CreatedAt    time.Time `json:"academy_created_at"`
	UpdatedAt    time.Time `json:"academy_updated_at"`
}

func NewAcademyResponse(src *m.AcademyModel) AcademyResponse {
	return AcademyResponse{
		AcademyID:    src.AcademyID,
		Name:         src.AcademyName,
		Slug:         src.AcademySlug,
		Description:  src.AcademyDescription,
		ContactPhone: src.AcademyContactPhone,
		ContactEmail: src.AcademyContactEmail,
		Address:      src.AcademyAddress,
		LogoURL:      src.AcademyLogoURL,
		IsActive:     src.AcademyIsActive,
		CreatedAt:    src.AcademyCreatedAt,
		UpdatedAt:    src.AcademyUpdatedAt,
	}
}

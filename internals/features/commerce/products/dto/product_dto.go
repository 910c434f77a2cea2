// file: internals/features/commerce/products/dto/product_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "arenaku_backend/internals/features/commerce/products/model"
)

type CreateProductRequest struct {
	Name        string   `json:"product_name" validate:"required,min=3,max=100"`
	SKU         string   `json:"product_sku" validate:"required,min=3,max=50"`
	Description string   `json:"product_description"`
	Price       float64  `json:"product_price" validate:"gte=0"`
	Stock       *int     `json:"product_stock" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"product_is_active"`
}

func (r *CreateProductRequest) Validate(v *validator.Validate) error {
	r.Name = strings.TrimSpace(r.Name)
	r.SKU = strings.ToUpper(strings.TrimSpace(r.SKU))
	return v.Struct(r)
}

func (r *CreateProductRequest) ApplyToModel(dst *m.ProductModel) {
	dst.ProductName = r.Name
	dst.ProductSKU = r.SKU
	dst.ProductDescription = strings.TrimSpace(r.Description)
	dst.ProductPrice = r.Price

	if r.Stock != nil {
		dst.ProductStock = *r.Stock
	}
	dst.ProductIsActive = true
	if r.IsActive != nil {
		dst.ProductIsActive = *r.IsActive
	}
}

type PatchProductRequest struct {
	Name        *string  `json:"product_name" validate:"omitempty,min=3,max=100"`
	Description *string  `json:"product_description"`
	Price       *float64 `json:"product_price" validate:"omitempty,gte=0"`
	Stock       *int     `json:"product_stock" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"product_is_active"`
}

func (r *PatchProductRequest) Validate(v *validator.Validate) error {
	if r.Name != nil {
		t := strings.TrimSpace(*r.Name)
		r.Name = &t
	}
	return v.Struct(r)
}

func (r *PatchProductRequest) ApplyPatch(dst *m.ProductModel) {
	if r.Name != nil {
		dst.ProductName = *r.Name
	}
	if r.Description != nil {
		dst.ProductDescription = strings.TrimSpace(*r.Description)
	}
	if r.Price != nil {
		dst.ProductPrice = *r.Price
	}
	if r.Stock != nil {
		dst.ProductStock = *r.Stock
	}
	if r.IsActive != nil {
		dst.ProductIsActive = *r.IsActive
	}
}

type ProductResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	Name        string    `json:"product_name"`
	Slug        string    `json:"product_slug"`
	SKU         string    `json:"product_sku"`
	Description string    `json:"product_description,omitempty"`
	Price       float64   `json:"product_price"`
	Stock       int       `json:"product_stock"`
	ImageURL    string    `json:"product_image_url,omitempty"`
	IsActive    bool      `json:"product_is_active"`
	CreatedAt   time.Time `json:"product_created_at"`
	UpdatedAt   time.Time `json:"product_updated_at"`
}

func NewProductResponse(src *m.ProductModel) ProductResponse {
	return ProductResponse{
		ProductID:   src.ProductID,
		Name:        src.ProductName,
		Slug:        src.ProductSlug,
		SKU:         src.ProductSKU,
		Description: src.ProductDescription,
		Price:       src.ProductPrice,
		Stock:       src.ProductStock,
		ImageURL:    src.ProductImageURL,
		IsActive:    src.ProductIsActive,
		CreatedAt:   src.ProductCreatedAt,
		UpdatedAt:   src.ProductUpdatedAt,
	}
}

// file: internals/features/commerce/products/model/product_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel: barang yang dijual di toko arena (jersey, bola, sewa alat, dst).
type ProductModel struct {
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;primaryKey;column:product_id"`

	ProductName string `json:"product_name" gorm:"type:varchar(100);not null;column:product_name"`
	ProductSlug string `json:"product_slug" gorm:"type:varchar(120);not null;uniqueIndex;column:product_slug"`
	ProductSKU  string `json:"product_sku" gorm:"type:varchar(50);not null;uniqueIndex;column:product_sku"`

	ProductDescription string  `json:"product_description" gorm:"type:text;column:product_description"`
	ProductPrice       float64 `json:"product_price" gorm:"not null;check:product_price >= 0;column:product_price"`
	ProductStock       int     `json:"product_stock" gorm:"not null;default:0;check:product_stock >= 0;column:product_stock"`

	ProductImageURL string `json:"product_image_url" gorm:"type:text;column:product_image_url"`

	ProductIsActive bool `json:"product_is_active" gorm:"not null;default:true;column:product_is_active"`

	ProductCreatedAt time.Time      `json:"product_created_at" gorm:"column:product_created_at;not null;autoCreateTime"`
	ProductUpdatedAt time.Time      `json:"product_updated_at" gorm:"column:product_updated_at;not null;autoUpdateTime"`
	ProductDeletedAt gorm.DeletedAt `json:"product_deleted_at" gorm:"column:product_deleted_at;index"`
}

func (ProductModel) TableName() string {
	return "products"
}

func (m *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProductID == uuid.Nil {
		m.ProductID = uuid.New()
	}
	return nil
}

// file: internals/features/commerce/carts/model/cart_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CartStatusActive     = "active"
	CartStatusCheckedOut = "checked_out"
)

// CartModel: satu cart aktif per user; cart lama jadi historis setelah checkout.
type CartModel struct {
	CartID uuid.UUID `json:"cart_id" gorm:"type:uuid;primaryKey;column:cart_id"`

	CartUserID uuid.UUID `json:"cart_user_id" gorm:"type:uuid;not null;index;column:cart_user_id"`
	CartStatus string    `json:"cart_status" gorm:"type:varchar(20);not null;default:'active';column:cart_status"`

	CartCreatedAt time.Time      `json:"cart_created_at" gorm:"column:cart_created_at;not null;autoCreateTime"`
	CartUpdatedAt time.Time      `json:"cart_updated_at" gorm:"column:cart_updated_at;not null;autoUpdateTime"`
	CartDeletedAt gorm.DeletedAt `json:"cart_deleted_at" gorm:"column:cart_deleted_at;index"`

	CartItems []CartItemModel `json:"cart_items" gorm:"foreignKey:CartItemCartID;references:CartID"`
}

func (CartModel) TableName() string {
	return "carts"
}

func (m *CartModel) BeforeCreate(tx *gorm.DB) error {
	if m.CartID == uuid.Nil {
		m.CartID = uuid.New()
	}
	return nil
}

// CartItemModel: baris produk di dalam cart. Harga TIDAK disimpan di sini,
// selalu diambil dari produk saat checkout.
type CartItemModel struct {
	CartItemID uuid.UUID `json:"cart_item_id" gorm:"type:uuid;primaryKey;column:cart_item_id"`

	CartItemCartID    uuid.UUID `json:"cart_item_cart_id" gorm:"type:uuid;not null;index;column:cart_item_cart_id"`
	CartItemProductID uuid.UUID `json:"cart_item_product_id" gorm:"type:uuid;not null;index;column:cart_item_product_id"`
	CartItemQuantity  int       `json:"cart_item_quantity" gorm:"not null;check:cart_item_quantity > 0;column:cart_item_quantity"`

	CartItemCreatedAt time.Time `json:"cart_item_created_at" gorm:"column:cart_item_created_at;not null;autoCreateTime"`
	CartItemUpdatedAt time.Time `json:"cart_item_updated_at" gorm:"column:cart_item_updated_at;not null;autoUpdateTime"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}

func (m *CartItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.CartItemID == uuid.Nil {
		m.CartItemID = uuid.New()
	}
	return nil
}

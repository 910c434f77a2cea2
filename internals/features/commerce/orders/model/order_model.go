// file: internals/features/commerce/orders/model/order_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusExpired  = "expired"
	OrderStatusCanceled = "canceled"
)

type OrderModel struct {
	OrderID uuid.UUID `json:"order_id" gorm:"type:uuid;primaryKey;column:order_id"`

	OrderUserID uuid.UUID `json:"order_user_id" gorm:"type:uuid;not null;index;column:order_user_id"`

	// Kode order unik, dipakai sebagai order_id Midtrans.
	OrderCode string `json:"order_code" gorm:"type:varchar(100);not null;uniqueIndex;column:order_code"`

	OrderTotalAmount float64 `json:"order_total_amount" gorm:"not null;check:order_total_amount > 0;column:order_total_amount"`
	OrderStatus      string  `json:"order_status" gorm:"type:varchar(20);not null;default:'pending';column:order_status"`

	OrderPaymentGateway     string `json:"order_payment_gateway" gorm:"type:varchar(50);not null;default:'midtrans';column:order_payment_gateway"`
	OrderPaymentToken       string `json:"order_payment_token" gorm:"type:text;column:order_payment_token"`
	OrderPaymentRedirectURL string `json:"order_payment_redirect_url" gorm:"type:text;column:order_payment_redirect_url"`
	OrderPaymentMethod      string `json:"order_payment_method" gorm:"type:varchar(50);column:order_payment_method"`

	OrderPaidAt *time.Time `json:"order_paid_at,omitempty" gorm:"column:order_paid_at"`

	OrderCreatedAt time.Time      `json:"order_created_at" gorm:"column:order_created_at;not null;autoCreateTime"`
	OrderUpdatedAt time.Time      `json:"order_updated_at" gorm:"column:order_updated_at;not null;autoUpdateTime"`
	OrderDeletedAt gorm.DeletedAt `json:"order_deleted_at" gorm:"column:order_deleted_at;index"`

	OrderItems []OrderItemModel `json:"order_items" gorm:"foreignKey:OrderItemOrderID;references:OrderID"`
}

func (OrderModel) TableName() string {
	return "orders"
}

func (m *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if m.OrderID == uuid.Nil {
		m.OrderID = uuid.New()
	}
	return nil
}

// OrderItemModel: snapshot produk saat checkout — nama & harga dibekukan
// supaya perubahan produk belakangan tidak mengubah order historis.
type OrderItemModel struct {
	OrderItemID uuid.UUID `json:"order_item_id" gorm:"type:uuid;primaryKey;column:order_item_id"`

	OrderItemOrderID   uuid.UUID `json:"order_item_order_id" gorm:"type:uuid;not null;index;column:order_item_order_id"`
	OrderItemProductID uuid.UUID `json:"order_item_product_id" gorm:"type:uuid;not null;column:order_item_product_id"`

	OrderItemProductName string  `json:"order_item_product_name" gorm:"type:varchar(100);not null;column:order_item_product_name"`
	OrderItemUnitPrice   float64 `json:"order_item_unit_price" gorm:"not null;column:order_item_unit_price"`
	OrderItemQuantity    int     `json:"order_item_quantity" gorm:"not null;check:order_item_quantity > 0;column:order_item_quantity"`
	OrderItemSubtotal    float64 `json:"order_item_subtotal" gorm:"not null;column:order_item_subtotal"`

	OrderItemCreatedAt time.Time `json:"order_item_created_at" gorm:"column:order_item_created_at;not null;autoCreateTime"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

func (m *OrderItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.OrderItemID == uuid.Nil {
		m.OrderItemID = uuid.New()
	}
	return nil
}

// file: internals/features/commerce/orders/dto/order_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "arenaku_backend/internals/features/commerce/orders/model"
)

// CheckoutRequest: order dibangun dari cart aktif si user; body hanya
// membawa data customer untuk Midtrans.
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
}

type OrderItemResponse struct {
	OrderItemID uuid.UUID `json:"order_item_id"`
	ProductID   uuid.UUID `json:"order_item_product_id"`
	ProductName string    `json:"order_item_product_name"`
	UnitPrice   float64   `json:"order_item_unit_price"`
	Quantity    int       `json:"order_item_quantity"`
	Subtotal    float64   `json:"order_item_subtotal"`
}

type OrderResponse struct {
	OrderID            uuid.UUID           `json:"order_id"`
	UserID             uuid.UUID           `json:"order_user_id"`
	Code               string              `json:"order_code"`
	TotalAmount        float64             `json:"order_total_amount"`
	Status             string              `json:"order_status"`
	PaymentGateway     string              `json:"order_payment_gateway"`
	PaymentToken       string              `json:"order_payment_token,omitempty"`
	PaymentRedirectURL string              `json:"order_payment_redirect_url,omitempty"`
	PaymentMethod      string              `json:"order_payment_method,omitempty"`
	PaidAt             *time.Time          `json:"order_paid_at,omitempty"`
	Items              []OrderItemResponse `json:"order_items"`
	CreatedAt          time.Time           `json:"order_created_at"`
	UpdatedAt          time.Time           `json:"order_updated_at"`
}

func NewOrderItemResponse(src *m.OrderItemModel) OrderItemResponse {
	return OrderItemResponse{
		OrderItemID: src.OrderItemID,
		ProductID:   src.OrderItemProductID,
		ProductName: src.OrderItemProductName,
		UnitPrice:   src.OrderItemUnitPrice,
		Quantity:    src.OrderItemQuantity,
		Subtotal:    src.OrderItemSubtotal,
	}
}

func NewOrderResponse(src *m.OrderModel) OrderResponse {
	items := make([]OrderItemResponse, 0, len(src.OrderItems))
	for i := range src.OrderItems {
		items = append(items, NewOrderItemResponse(&src.OrderItems[i]))
	}
	return OrderResponse{
		OrderID:            src.OrderID,
		UserID:             src.OrderUserID,
		Code:               src.OrderCode,
		TotalAmount:        src.OrderTotalAmount,
		Status:             src.OrderStatus,
		PaymentGateway:     src.OrderPaymentGateway,
		PaymentToken:       src.OrderPaymentToken,
		PaymentRedirectURL: src.OrderPaymentRedirectURL,
		PaymentMethod:      src.OrderPaymentMethod,
		PaidAt:             src.OrderPaidAt,
		Items:              items,
		CreatedAt:          src.OrderCreatedAt,
		UpdatedAt:          src.OrderUpdatedAt,
	}
}

// file: internals/features/commerce/carts/dto/cart_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "arenaku_backend/internals/features/commerce/carts/model"
)

type AddCartItemRequest struct {
	ProductID string `json:"cart_item_product_id" validate:"required,uuid"`
	Quantity  int    `json:"cart_item_quantity" validate:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"cart_item_quantity" validate:"required,gt=0"`
}

type CartItemResponse struct {
	CartItemID uuid.UUID `json:"cart_item_id"`
	ProductID  uuid.UUID `json:"cart_item_product_id"`
	Quantity   int       `json:"cart_item_quantity"`
	CreatedAt  time.Time `json:"cart_item_created_at"`
	UpdatedAt  time.Time `json:"cart_item_updated_at"`
}

type CartResponse struct {
	CartID    uuid.UUID          `json:"cart_id"`
	UserID    uuid.UUID          `json:"cart_user_id"`
	Status    string             `json:"cart_status"`
	Items     []CartItemResponse `json:"cart_items"`
	CreatedAt time.Time          `json:"cart_created_at"`
	UpdatedAt time.Time          `json:"cart_updated_at"`
}

func NewCartItemResponse(src *m.CartItemModel) CartItemResponse {
	return CartItemResponse{
		CartItemID: src.CartItemID,
		ProductID:  src.CartItemProductID,
		Quantity:   src.CartItemQuantity,
		CreatedAt:  src.CartItemCreatedAt,
		UpdatedAt:  src.CartItemUpdatedAt,
	}
}

func NewCartResponse(src *m.CartModel) CartResponse {
	items := make([]CartItemResponse, 0, len(src.CartItems))
	for i := range src.CartItems {
		items = append(items, NewCartItemResponse(&src.CartItems[i]))
	}
	return CartResponse{
		CartID:    src.CartID,
		UserID:    src.CartUserID,
		Status:    src.CartStatus,
		Items:     items,
		CreatedAt: src.CartCreatedAt,
		UpdatedAt: src.CartUpdatedAt,
	}
}

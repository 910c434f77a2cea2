// file: internals/features/commerce/orders/controller/order_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cartModel "arenaku_backend/internals/features/commerce/carts/model"
	d "arenaku_backend/internals/features/commerce/orders/dto"
	m "arenaku_backend/internals/features/commerce/orders/model"
	orderService "arenaku_backend/internals/features/commerce/orders/service"
	productModel "arenaku_backend/internals/features/commerce/products/model"
	helper "arenaku_backend/internals/helpers"
	helperAuth "arenaku_backend/internals/helpers/auth"
)

type OrderController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOrderController(db *gorm.DB, v *validator.Validate) *OrderController {
	return &OrderController{DB: db, Validate: v}
}

/* =========================
   POST /orders/checkout
   Cart aktif → order + snap token, satu transaksi.
   ========================= */

func (ctl *OrderController) Checkout(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var order m.OrderModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var cart cartModel.CartModel
		if err := tx.
			Preload("CartItems").
			Where("cart_user_id = ? AND cart_status = ?", userID, cartModel.CartStatusActive).
			First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(http.StatusBadRequest, "Cart kosong")
			}
			return err
		}
		if len(cart.CartItems) == 0 {
			return fiber.NewError(http.StatusBadRequest, "Cart kosong")
		}

		order = m.OrderModel{
			OrderUserID:         userID,
			OrderCode:           fmt.Sprintf("ORDER-%d", time.Now().UnixNano()),
			OrderStatus:         m.OrderStatusPending,
			OrderPaymentGateway: "midtrans",
		}

		total := 0.0
		for _, ci := range cart.CartItems {
			var product productModel.ProductModel
			if err := tx.
				Where("product_id = ? AND product_is_active = ?", ci.CartItemProductID, true).
				First(&product).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(http.StatusBadRequest, "Produk di cart sudah tidak tersedia")
				}
				return err
			}
			if product.ProductStock < ci.CartItemQuantity {
				return fiber.NewError(http.StatusBadRequest,
					fmt.Sprintf("Stok %s tidak cukup (sisa %d)", product.ProductName, product.ProductStock))
			}

			// Stok dikurangi di transaksi yang sama dengan pembuatan order.
			if err := tx.Model(&product).
				Update("product_stock", gorm.Expr("product_stock - ?", ci.CartItemQuantity)).Error; err != nil {
				return err
			}

			subtotal := product.ProductPrice * float64(ci.CartItemQuantity)
			total += subtotal
			order.OrderItems = append(order.OrderItems, m.OrderItemModel{
				OrderItemProductID:   product.ProductID,
				OrderItemProductName: product.ProductName,
				OrderItemUnitPrice:   product.ProductPrice,
				OrderItemQuantity:    ci.CartItemQuantity,
				OrderItemSubtotal:    subtotal,
			})
		}
		order.OrderTotalAmount = total

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Cart ditutup, bukan dihapus — tetap kelihatan di riwayat.
		return tx.Model(&cart).Update("cart_status", cartModel.CartStatusCheckedOut).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	token, redirectURL, err := orderService.GenerateSnapToken(order, req.CustomerName, req.CustomerEmail)
	if err != nil {
		log.Println("[ERROR] Gagal membuat snap token:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat token pembayaran")
	}

	order.OrderPaymentToken = token
	order.OrderPaymentRedirectURL = redirectURL
	if err := ctl.DB.Model(&order).Updates(map[string]interface{}{
		"order_payment_token":        token,
		"order_payment_redirect_url": redirectURL,
	}).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Order berhasil dibuat. Silakan lanjutkan pembayaran.", d.NewOrderResponse(&order))
}

/* =========================
   POST /payments/midtrans/webhook
   ========================= */

func (ctl *OrderController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid webhook"})
	}

	// Koneksi DB diambil dari locals (dipasang DBMiddleware); fallback ke ctl.DB.
	db := ctl.DB
	if v, ok := c.Locals("db").(*gorm.DB); ok && v != nil {
		db = v
	}

	if err := orderService.HandleOrderStatusWebhook(db, body); err != nil {
		log.Println("[ERROR] Webhook gagal:", err)
		return c.SendStatus(http.StatusInternalServerError)
	}
	// Midtrans hanya butuh 200.
	return c.SendStatus(http.StatusOK)
}

/* =========================
   GET /orders (admin) & /orders/me (user)
   ========================= */

type listOrderQuery struct {
	Status string `query:"status"`
	UserID string `query:"user_id"`
}

func (ctl *OrderController) List(c *fiber.Ctx) error {
	var q listOrderQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.Model(&m.OrderModel{})
	if q.Status != "" {
		db = db.Where("order_status = ?", q.Status)
	}
	if q.UserID != "" {
		if _, err := uuid.Parse(q.UserID); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "user_id invalid")
		}
		db = db.Where("order_user_id = ?", q.UserID)
	}

	p := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.OrderModel
	if err := db.
		Preload("OrderItems").
		Order("order_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	resp := make([]d.OrderResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, d.NewOrderResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

func (ctl *OrderController) ListMine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 25, 200)

	db := ctl.DB.Model(&m.OrderModel{}).Where("order_user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.OrderModel
	if err := db.
		Preload("OrderItems").
		Order("order_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	resp := make([]d.OrderResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, d.NewOrderResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

func (ctl *OrderController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var row m.OrderModel
	if err := ctl.DB.Preload("OrderItems").First(&row, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Order tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	// Non-admin hanya boleh lihat order miliknya.
	if !helperAuth.IsAdmin(c) {
		userID, err := helperAuth.GetUserIDFromToken(c)
		if err != nil || row.OrderUserID != userID {
			return helper.JsonError(c, http.StatusForbidden, "Bukan order milik Anda")
		}
	}
	return helper.JsonOK(c, "OK", d.NewOrderResponse(&row))
}

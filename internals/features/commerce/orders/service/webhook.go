// file: internals/features/commerce/orders/service/webhook.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"arenaku_backend/internals/features/commerce/orders/model"
	notificationModel "arenaku_backend/internals/features/notifications/model"
)

// HandleOrderStatusWebhook dipanggil saat menerima notifikasi status dari Midtrans.
func HandleOrderStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderCode, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	var order model.OrderModel
	if err := db.Where("order_code = ?", orderCode).First(&order).Error; err != nil {
		log.Println("[ERROR] Order tidak ditemukan:", orderCode)
		return fmt.Errorf("order with code %s not found", orderCode)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		order.OrderStatus = model.OrderStatusPaid
		order.OrderPaidAt = &now
		if pt, ok := body["payment_type"].(string); ok {
			order.OrderPaymentMethod = pt
		}
	case "expire":
		order.OrderStatus = model.OrderStatusExpired
	case "cancel", "deny":
		order.OrderStatus = model.OrderStatusCanceled
	default:
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}

	if err := db.Save(&order).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status order:", err)
		return err
	}

	// Kabari user; kegagalan notifikasi tidak membatalkan update status.
	notifyOrderStatus(db, &order)
	return nil
}

func notifyOrderStatus(db *gorm.DB, order *model.OrderModel) {
	var title string
	switch order.OrderStatus {
	case model.OrderStatusPaid:
		title = "Pembayaran diterima"
	case model.OrderStatusExpired:
		title = "Pembayaran kedaluwarsa"
	case model.OrderStatusCanceled:
		title = "Order dibatalkan"
	default:
		return
	}

	notif := notificationModel.NotificationModel{
		NotificationUserID:      order.OrderUserID,
		NotificationTitle:       title,
		NotificationDescription: fmt.Sprintf("Order %s berstatus %s", order.OrderCode, order.OrderStatus),
		NotificationType:        notificationModel.NotificationTypeOrder,
		NotificationPayload: datatypes.JSONMap{
			"order_id":     order.OrderID.String(),
			"order_code":   order.OrderCode,
			"order_status": order.OrderStatus,
		},
	}
	if err := db.Create(&notif).Error; err != nil {
		log.Println("[WARN] Gagal membuat notifikasi order:", err)
	}
}

package service

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"arenaku_backend/internals/features/commerce/orders/model"
	notificationModel "arenaku_backend/internals/features/notifications/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.OrderModel{},
		&model.OrderItemModel{},
		&notificationModel.NotificationModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedPendingOrder(t *testing.T, db *gorm.DB) *model.OrderModel {
	t.Helper()
	order := &model.OrderModel{
		OrderUserID:         uuid.New(),
		OrderCode:           "ORDER-TEST-1",
		OrderTotalAmount:    150000,
		OrderStatus:         model.OrderStatusPending,
		OrderPaymentGateway: "midtrans",
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func TestHandleOrderStatusWebhook_SettlementMarksPaid(t *testing.T) {
	db := openTestDB(t)
	order := seedPendingOrder(t, db)

	err := HandleOrderStatusWebhook(db, map[string]interface{}{
		"order_id":           order.OrderCode,
		"transaction_status": "settlement",
		"payment_type":       "qris",
	})
	if err != nil {
		t.Fatalf("webhook: %v", err)
	}

	var got model.OrderModel
	if err := db.First(&got, "order_id = ?", order.OrderID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if got.OrderStatus != model.OrderStatusPaid {
		t.Errorf("status = %q, want %q", got.OrderStatus, model.OrderStatusPaid)
	}
	if got.OrderPaidAt == nil {
		t.Error("paid_at must be set")
	}
	if got.OrderPaymentMethod != "qris" {
		t.Errorf("payment_method = %q, want qris", got.OrderPaymentMethod)
	}

	// Webhook juga mengirim notifikasi ke user pemilik order.
	var n int64
	if err := db.Model(&notificationModel.NotificationModel{}).
		Where("notification_user_id = ? AND notification_type = ?",
			order.OrderUserID, notificationModel.NotificationTypeOrder).
		Count(&n).Error; err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	if n != 1 {
		t.Errorf("notifications = %d, want 1", n)
	}
}

func TestHandleOrderStatusWebhook_ExpireAndCancel(t *testing.T) {
	cases := []struct {
		txStatus string
		want     string
	}{
		{"expire", model.OrderStatusExpired},
		{"cancel", model.OrderStatusCanceled},
		{"deny", model.OrderStatusCanceled},
	}
	for _, tc := range cases {
		db := openTestDB(t)
		order := seedPendingOrder(t, db)

		err := HandleOrderStatusWebhook(db, map[string]interface{}{
			"order_id":           order.OrderCode,
			"transaction_status": tc.txStatus,
		})
		if err != nil {
			t.Fatalf("%s: %v", tc.txStatus, err)
		}

		var got model.OrderModel
		if err := db.First(&got, "order_id = ?", order.OrderID).Error; err != nil {
			t.Fatalf("%s: reload: %v", tc.txStatus, err)
		}
		if got.OrderStatus != tc.want {
			t.Errorf("%s: status = %q, want %q", tc.txStatus, got.OrderStatus, tc.want)
		}
		if got.OrderPaidAt != nil {
			t.Errorf("%s: paid_at must stay nil", tc.txStatus)
		}
	}
}

func TestHandleOrderStatusWebhook_PendingIgnored(t *testing.T) {
	db := openTestDB(t)
	order := seedPendingOrder(t, db)

	err := HandleOrderStatusWebhook(db, map[string]interface{}{
		"order_id":           order.OrderCode,
		"transaction_status": "pending",
	})
	if err != nil {
		t.Fatalf("webhook: %v", err)
	}

	var got model.OrderModel
	if err := db.First(&got, "order_id = ?", order.OrderID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.OrderStatus != model.OrderStatusPending {
		t.Errorf("status = %q, want unchanged pending", got.OrderStatus)
	}
}

func TestHandleOrderStatusWebhook_BadPayload(t *testing.T) {
	db := openTestDB(t)

	if err := HandleOrderStatusWebhook(db, map[string]interface{}{"foo": "bar"}); err == nil {
		t.Error("expected error for incomplete payload")
	}
	if err := HandleOrderStatusWebhook(db, map[string]interface{}{
		"order_id":           "ORDER-DOES-NOT-EXIST",
		"transaction_status": "settlement",
	}); err == nil {
		t.Error("expected error for unknown order")
	}
}

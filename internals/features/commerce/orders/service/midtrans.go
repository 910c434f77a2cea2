// file: internals/features/commerce/orders/service/midtrans.go
package service

import (
	"os"
	"strconv"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"arenaku_backend/internals/features/commerce/orders/model"
)

var SnapClient snap.Client

// InitMidtrans dipanggil sekali saat bootstrap app. Default sandbox;
// set MIDTRANS_USE_PROD=true untuk production.
func InitMidtrans(serverKey string) {
	env := midtrans.Sandbox
	if v := os.Getenv("MIDTRANS_USE_PROD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			env = midtrans.Production
		}
	}
	SnapClient.New(serverKey, env)
}

// GenerateSnapToken membuat transaksi Snap untuk satu order.
// Item detail diambil dari snapshot order_items.
func GenerateSnapToken(o model.OrderModel, name, email string) (string, string, error) {
	items := make([]midtrans.ItemDetails, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		items = append(items, midtrans.ItemDetails{
			ID:    it.OrderItemProductID.String(),
			Name:  it.OrderItemProductName,
			Price: int64(it.OrderItemUnitPrice),
			Qty:   int32(it.OrderItemQuantity),
		})
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  o.OrderCode,
			GrossAmt: int64(o.OrderTotalAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
		Items: &items,
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

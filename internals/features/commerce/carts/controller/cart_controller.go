// file: internals/features/commerce/carts/controller/cart_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "arenaku_backend/internals/features/commerce/carts/dto"
	m "arenaku_backend/internals/features/commerce/carts/model"
	productModel "arenaku_backend/internals/features/commerce/products/model"
	helper "arenaku_backend/internals/helpers"
	helperAuth "arenaku_backend/internals/helpers/auth"
)

type CartController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCartController(db *gorm.DB, v *validator.Validate) *CartController {
	return &CartController{DB: db, Validate: v}
}

// findOrCreateActiveCart: user selalu punya tepat satu cart aktif.
func findOrCreateActiveCart(db *gorm.DB, userID uuid.UUID) (*m.CartModel, error) {
	var cart m.CartModel
	err := db.
		Preload("CartItems").
		Where("cart_user_id = ? AND cart_status = ?", userID, m.CartStatusActive).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = m.CartModel{CartUserID: userID, CartStatus: m.CartStatusActive}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

/* =========================
   GET /carts/me
   ========================= */

func (ctl *CartController) GetMyCart(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	cart, err := findOrCreateActiveCart(ctl.DB, userID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", d.NewCartResponse(cart))
}

/* =========================
   POST /carts/items — tambah / merge quantity
   ========================= */

func (ctl *CartController) AddItem(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	productID, _ := uuid.Parse(req.ProductID)

	// Produk harus ada & aktif sebelum masuk cart.
	var product productModel.ProductModel
	if err := ctl.DB.
		Where("product_id = ? AND product_is_active = ?", productID, true).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Produk tidak ditemukan atau nonaktif")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	cart, err := findOrCreateActiveCart(ctl.DB, userID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	// Produk sudah ada di cart → merge quantity.
	var item m.CartItemModel
	err = ctl.DB.
		Where("cart_item_cart_id = ? AND cart_item_product_id = ?", cart.CartID, productID).
		First(&item).Error
	switch {
	case err == nil:
		item.CartItemQuantity += req.Quantity
		if err := ctl.DB.Save(&item).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = m.CartItemModel{
			CartItemCartID:    cart.CartID,
			CartItemProductID: productID,
			CartItemQuantity:  req.Quantity,
		}
		if err := ctl.DB.Create(&item).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	default:
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Item ditambahkan ke cart", d.NewCartItemResponse(&item))
}

/* =========================
   PATCH /carts/items/:id
   ========================= */

func (ctl *CartController) UpdateItem(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	itemID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var req d.UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	item, err := ctl.ownedItem(userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Item cart tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	item.CartItemQuantity = req.Quantity
	if err := ctl.DB.Save(item).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Item cart diperbarui", d.NewCartItemResponse(item))
}

/* =========================
   DELETE /carts/items/:id
   ========================= */

func (ctl *CartController) RemoveItem(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	itemID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	item, err := ctl.ownedItem(userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Item cart tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(item).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Item cart dihapus", fiber.Map{"cart_item_id": itemID})
}

/* =========================
   DELETE /carts/me — kosongkan cart aktif
   ========================= */

func (ctl *CartController) ClearMyCart(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	cart, err := findOrCreateActiveCart(ctl.DB, userID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.
		Where("cart_item_cart_id = ?", cart.CartID).
		Delete(&m.CartItemModel{}).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Cart dikosongkan", fiber.Map{"cart_id": cart.CartID})
}

// ownedItem memastikan item milik cart aktif si user, bukan cart orang lain.
func (ctl *CartController) ownedItem(userID, itemID uuid.UUID) (*m.CartItemModel, error) {
	var item m.CartItemModel
	err := ctl.DB.
		Joins("JOIN carts ON carts.cart_id = cart_items.cart_item_cart_id").
		Where("cart_items.cart_item_id = ? AND carts.cart_user_id = ? AND carts.cart_status = ?",
			itemID, userID, m.CartStatusActive).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

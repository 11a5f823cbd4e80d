package service

import (
	"testing"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCartMergesExistingRow(t *testing.T) {
	db := newTestDB(t)
	seedProduk(t, db, "BRG-1", 15000, 10)

	svc := NewCartService(db)
	require.NoError(t, svc.CreateCart(CreateCartInput{KodeItem: "BRG-1", Qty: 2}, "user-1"))
	require.NoError(t, svc.CreateCart(CreateCartInput{KodeItem: "BRG-1", Qty: 3}, "user-1"))

	var carts []models.Cart
	require.NoError(t, db.Where("user_id = ?", "user-1").Find(&carts).Error)
	require.Len(t, carts, 1)
	assert.Equal(t, 5, carts[0].Qty)
}

func TestIncrementExceedingStock(t *testing.T) {
	db := newTestDB(t)
	seedProduk(t, db, "BRG-1", 15000, 3)

	require.NoError(t, db.Create(&models.Cart{
		CartID:   "cart-1",
		UserID:   "user-1",
		KodeItem: "BRG-1",
		Qty:      3,
	}).Error)

	err := NewCartService(db).UpdateQuantity(UpdateQuantityInput{
		CartID:   "cart-1",
		KodeItem: "BRG-1",
		Type:     "increment",
	}, "user-1")

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.StatusCode)
	assert.Equal(t, "Input stock exceeds total product stock.", appErr.Message)

	var cart models.Cart
	require.NoError(t, db.Where("cart_id = ?", "cart-1").First(&cart).Error)
	assert.Equal(t, 3, cart.Qty)
}

func TestInputQuantityExceedingStock(t *testing.T) {
	db := newTestDB(t)
	seedProduk(t, db, "BRG-1", 15000, 3)

	require.NoError(t, db.Create(&models.Cart{
		CartID:   "cart-1",
		UserID:   "user-1",
		KodeItem: "BRG-1",
		Qty:      1,
	}).Error)

	err := NewCartService(db).UpdateQuantity(UpdateQuantityInput{
		CartID:   "cart-1",
		KodeItem: "BRG-1",
		Type:     "input",
		Qty:      10,
	}, "user-1")

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.StatusCode)
}

func TestDeleteCartNotFound(t *testing.T) {
	db := newTestDB(t)

	err := NewCartService(db).DeleteCart("missing", "user-1")

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestUpdateActiveScopedToUser(t *testing.T) {
	db := newTestDB(t)
	seedProduk(t, db, "BRG-1", 15000, 10)

	require.NoError(t, db.Create(&models.Cart{
		CartID:   "cart-1",
		UserID:   "user-1",
		KodeItem: "BRG-1",
		Qty:      1,
	}).Error)

	// user lain tidak boleh menyentuh cart orang
	err := NewCartService(db).UpdateActive("cart-1", "user-2", false)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)

	require.NoError(t, NewCartService(db).UpdateActive("cart-1", "user-1", false))

	var cart models.Cart
	require.NoError(t, db.Where("cart_id = ?", "cart-1").First(&cart).Error)
	assert.False(t, cart.Active)
}

package service

import (
	"strings"
	"testing"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPickup(t *testing.T, svc *TransaksiService, qty int) *CreateTransaksiResult {
	t.Helper()

	result, err := svc.Create(CreateTransaksiInput{
		Type: "pickup",
		Bank: TransaksiBank{
			AtasNama:   "TB Sinar Baja",
			Bank:       "BCA",
			NoRekening: "1234567890",
		},
		Products: []TransaksiProduct{
			{
				NamaProdukAsli: "Produk BRG-1",
				KodeItem:       "BRG-1",
				Kategori:       "Besi",
				Harga:          15000,
				Quantity:       qty,
				SubtotalProduk: 15000 * float64(qty),
			},
		},
		Total: 15000 * float64(qty),
	}, "user-1")
	require.NoError(t, err)
	return result
}

func TestCreatePickupTransaction(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-1")
	seedProduk(t, db, "BRG-1", 15000, 10)

	svc := NewTransaksiService(db)
	result := createPickup(t, svc, 2)

	assert.True(t, strings.HasPrefix(result.TransaksiID, "#"))

	var transaksi models.Transaksi
	require.NoError(t, db.Preload("Payment").Preload("Details").
		Where("transaksi_id = ?", result.TransaksiID).
		First(&transaksi).Error)

	assert.Equal(t, models.TransaksiPending, transaksi.Status)
	assert.Equal(t, models.PaymentPending, transaksi.Payment.Status)
	assert.True(t, strings.HasPrefix(transaksi.Payment.PaymentID, "PAY"))
	assert.Equal(t, "User user-1", transaksi.NamaPenerima)
	assert.Equal(t, "081234567890", transaksi.NoTelpon)
	assert.Equal(t, 30000.0, transaksi.SubtotalProduk)
	assert.Equal(t, 30000.0, transaksi.Total)
	require.Len(t, transaksi.Details, 1)
	assert.Equal(t, 2, transaksi.Details[0].Quantity)

	var produk models.Produk
	require.NoError(t, db.Where("kode_item = ?", "BRG-1").First(&produk).Error)
	assert.Equal(t, 8, produk.TotalStok)
}

func TestCreateDeliveryTransaction(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-1")
	seedProduk(t, db, "BRG-1", 15000, 10)

	svc := NewTransaksiService(db)
	result, err := svc.Create(CreateTransaksiInput{
		Type: "delivery",
		Bank: TransaksiBank{AtasNama: "TB Sinar Baja", Bank: "BCA", NoRekening: "1234567890"},
		Products: []TransaksiProduct{
			{NamaProdukAsli: "Produk BRG-1", KodeItem: "BRG-1", Harga: 15000, Quantity: 1, SubtotalProduk: 15000},
		},
		Address: &TransaksiAddress{
			NamaPenerima:  "Budi",
			NoTelpon:      "081111111111",
			Provinsi:      "Jawa Timur",
			Kota:          "Surabaya",
			Kecamatan:     "Rungkut",
			AlamatLengkap: "Jl. Raya 1",
			KodePos:       "60293",
		},
		Total: 15000,
	}, "user-1")
	require.NoError(t, err)

	var transaksi models.Transaksi
	require.NoError(t, db.Preload("Payment").
		Where("transaksi_id = ?", result.TransaksiID).
		First(&transaksi).Error)

	assert.Equal(t, models.TransaksiDraft, transaksi.Status)
	assert.Equal(t, models.PaymentDraft, transaksi.Payment.Status)
	assert.Equal(t, "Budi", transaksi.NamaPenerima)
	assert.Equal(t, "Surabaya", transaksi.Kota)
	assert.False(t, transaksi.Replied)
}

func TestCreateExceedsStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-1")
	seedProduk(t, db, "BRG-1", 15000, 1)

	svc := NewTransaksiService(db)
	_, err := svc.Create(CreateTransaksiInput{
		Type: "pickup",
		Bank: TransaksiBank{AtasNama: "TB Sinar Baja", Bank: "BCA", NoRekening: "1234567890"},
		Products: []TransaksiProduct{
			{NamaProdukAsli: "Produk BRG-1", KodeItem: "BRG-1", Harga: 15000, Quantity: 5, SubtotalProduk: 75000},
		},
		Total: 75000,
	}, "user-1")

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Transaksi{}).Count(&count).Error)
	assert.Zero(t, count)

	var produk models.Produk
	require.NoError(t, db.Where("kode_item = ?", "BRG-1").First(&produk).Error)
	assert.Equal(t, 1, produk.TotalStok)
}

func TestCreateDeletesCheckedOutCarts(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-1")
	seedProduk(t, db, "BRG-1", 15000, 10)

	require.NoError(t, db.Create(&models.Cart{
		CartID:   "cart-1",
		UserID:   "user-1",
		KodeItem: "BRG-1",
		Qty:      2,
	}).Error)

	svc := NewTransaksiService(db)
	_, err := svc.Create(CreateTransaksiInput{
		Type: "pickup",
		Bank: TransaksiBank{AtasNama: "TB Sinar Baja", Bank: "BCA", NoRekening: "1234567890"},
		Products: []TransaksiProduct{
			{NamaProdukAsli: "Produk BRG-1", KodeItem: "BRG-1", Harga: 15000, Quantity: 2, SubtotalProduk: 30000},
		},
		Carts: []string{"cart-1"},
		Total: 30000,
	}, "user-1")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateCostOnPickupForbidden(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-1")
	seedProduk(t, db, "BRG-1", 15000, 10)

	svc := NewTransaksiService(db)
	result := createPickup(t, svc, 1)

	err := svc.UpdateCost(UpdateCostInput{
		TransaksiID:    result.TransaksiID,
		SubtotalOngkir: 25000,
	})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.StatusCode)

	var transaksi models.Transaksi
	require.NoError(t, db.Where("transaksi_id = ?", result.TransaksiID).First(&transaksi).Error)
	assert.Zero(t, transaksi.SubtotalOngkir)
	assert.False(t, transaksi.Replied)
}

func TestUpdateCostMissingTransaction(t *testing.T) {
	db := newTestDB(t)

	err := NewTransaksiService(db).UpdateCost(UpdateCostInput{
		TransaksiID:    "#000000000000abc",
		SubtotalOngkir: 25000,
	})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestCancelPayment(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-1")
	seedProduk(t, db, "BRG-1", 15000, 10)

	svc := NewTransaksiService(db)
	result := createPickup(t, svc, 1)

	require.NoError(t, svc.SubmitProof(result.TransaksiID,
		"http://localhost/public/payments/bukti.jpg", "Budi", "BCA"))

	require.NoError(t, svc.UpdateCancel(UpdateCancelInput{
		TransaksiID: result.TransaksiID,
		IsCancel:    true,
		Type:        "pembayaran",
		Alasan:      "Bukti transfer tidak valid",
	}))

	var payment models.Payment
	require.NoError(t, db.Where("transaksi_id = ?", result.TransaksiID).First(&payment).Error)
	assert.Equal(t, models.PaymentCanceled, payment.Status)
	require.NotNil(t, payment.Alasan)
	assert.Equal(t, "Bukti transfer tidak valid", *payment.Alasan)
	assert.Nil(t, payment.Expired)

	var transaksi models.Transaksi
	require.NoError(t, db.Where("transaksi_id = ?", result.TransaksiID).First(&transaksi).Error)
	assert.Equal(t, models.TransaksiPending, transaksi.Status)
}

func TestCancelTransaction(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-1")
	seedProduk(t, db, "BRG-1", 15000, 10)

	svc := NewTransaksiService(db)
	result := createPickup(t, svc, 1)

	require.NoError(t, svc.UpdateCancel(UpdateCancelInput{
		TransaksiID: result.TransaksiID,
		IsCancel:    true,
		Type:        "transaksi",
		Alasan:      "Stok kosong",
	}))

	var transaksi models.Transaksi
	require.NoError(t, db.Preload("Payment").
		Where("transaksi_id = ?", result.TransaksiID).First(&transaksi).Error)
	assert.Equal(t, models.TransaksiCanceled, transaksi.Status)
	require.NotNil(t, transaksi.Alasan)
	assert.Equal(t, "Stok kosong", *transaksi.Alasan)
	assert.Equal(t, models.PaymentPending, transaksi.Payment.Status)
}

func TestDeliveryDraftFlow(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-1")
	seedProduk(t, db, "BRG-1", 15000, 10)

	svc := NewTransaksiService(db)
	result, err := svc.Create(CreateTransaksiInput{
		Type: "delivery",
		Bank: TransaksiBank{AtasNama: "TB Sinar Baja", Bank: "BCA", NoRekening: "1234567890"},
		Products: []TransaksiProduct{
			{NamaProdukAsli: "Produk BRG-1", KodeItem: "BRG-1", Harga: 15000, Quantity: 1, SubtotalProduk: 15000},
		},
		Address: &TransaksiAddress{NamaPenerima: "Budi", NoTelpon: "081111111111"},
		Total:   15000,
	}, "user-1")
	require.NoError(t, err)

	// operator mengisi ongkir
	require.NoError(t, svc.UpdateCost(UpdateCostInput{
		TransaksiID:    result.TransaksiID,
		SubtotalOngkir: 20000,
	}))

	var transaksi models.Transaksi
	require.NoError(t, db.Preload("Payment").
		Where("transaksi_id = ?", result.TransaksiID).First(&transaksi).Error)
	assert.Equal(t, 20000.0, transaksi.SubtotalOngkir)
	assert.True(t, transaksi.Replied)
	assert.Equal(t, "Menunggu konfirmasi anda",
		StatusLabel(transaksi.Payment.Status, transaksi.Replied, transaksi.Status, UserView))

	// user menyetujui
	require.NoError(t, svc.UpdateDraft(UpdateDraftInput{
		TransaksiID: result.TransaksiID,
		Total:       35000,
	}))

	require.NoError(t, db.Preload("Payment").
		Where("transaksi_id = ?", result.TransaksiID).First(&transaksi).Error)
	assert.Equal(t, models.TransaksiPending, transaksi.Status)
	assert.Equal(t, models.PaymentPending, transaksi.Payment.Status)
	assert.Equal(t, 35000.0, transaksi.Total)
}

func TestVerificationAndDone(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user-1")
	seedProduk(t, db, "BRG-1", 15000, 10)

	svc := NewTransaksiService(db)
	result := createPickup(t, svc, 1)

	require.NoError(t, svc.SubmitProof(result.TransaksiID,
		"http://localhost/public/payments/bukti.jpg", "Budi", "BCA"))

	var payment models.Payment
	require.NoError(t, db.Where("transaksi_id = ?", result.TransaksiID).First(&payment).Error)
	assert.Equal(t, models.PaymentPaid, payment.Status)
	assert.Equal(t, "transfer", payment.Metode)
	require.NotNil(t, payment.Expired)

	// is_verification false sengaja no-op
	require.NoError(t, svc.UpdateVerification(UpdateVerificationInput{
		TransaksiID:    result.TransaksiID,
		IsVerification: false,
	}))
	require.NoError(t, db.Where("transaksi_id = ?", result.TransaksiID).First(&payment).Error)
	assert.Equal(t, models.PaymentPaid, payment.Status)

	require.NoError(t, svc.UpdateVerification(UpdateVerificationInput{
		TransaksiID:    result.TransaksiID,
		IsVerification: true,
	}))

	var transaksi models.Transaksi
	require.NoError(t, db.Preload("Payment").
		Where("transaksi_id = ?", result.TransaksiID).First(&transaksi).Error)
	assert.Equal(t, models.TransaksiProcess, transaksi.Status)
	assert.Equal(t, models.PaymentDone, transaksi.Payment.Status)
	assert.Equal(t, "Diproses",
		StatusLabel(transaksi.Payment.Status, transaksi.Replied, transaksi.Status, UserView))

	require.NoError(t, svc.UpdateDone(UpdateDoneInput{
		TransaksiID: result.TransaksiID,
		IsDone:      true,
	}))
	require.NoError(t, db.Preload("Payment").
		Where("transaksi_id = ?", result.TransaksiID).First(&transaksi).Error)
	assert.Equal(t, models.TransaksiDone, transaksi.Status)
	assert.Equal(t, "Selesai",
		StatusLabel(transaksi.Payment.Status, transaksi.Replied, transaksi.Status, UserView))
}

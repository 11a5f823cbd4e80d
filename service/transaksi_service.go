package service

import (
	"time"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"gorm.io/gorm"
)

type TransaksiProduct struct {
	NamaProdukAsli string  `json:"nama_produk_asli" binding:"required"`
	KodeItem       string  `json:"kode_item" binding:"required"`
	Kategori       string  `json:"kategori"`
	Harga          float64 `json:"harga" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required,gt=0"`
	SubtotalProduk float64 `json:"subtotal_produk" binding:"required"`
}

type TransaksiBank struct {
	AtasNama   string `json:"atas_nama" binding:"required"`
	Bank       string `json:"bank" binding:"required"`
	NoRekening string `json:"no_rekening" binding:"required"`
}

type TransaksiAddress struct {
	NamaPenerima  string `json:"nama_penerima"`
	NoTelpon      string `json:"no_telpon"`
	Provinsi      string `json:"provinsi"`
	Kota          string `json:"kota"`
	Kecamatan     string `json:"kecamatan"`
	AlamatLengkap string `json:"alamat_lengkap"`
	Label         string `json:"label"`
	KodePos       string `json:"kode_pos"`
}

type CreateTransaksiInput struct {
	Type           string             `json:"type" binding:"required,oneof=pickup delivery"`
	Bank           TransaksiBank      `json:"bank" binding:"required"`
	Products       []TransaksiProduct `json:"products" binding:"required,min=1,dive"`
	Address        *TransaksiAddress  `json:"address"`
	Carts          []string           `json:"carts"`
	SubtotalOngkir float64            `json:"subtotal_ongkir"`
	Total          float64            `json:"total"`
}

type CreateTransaksiResult struct {
	TransaksiID    string             `json:"transaksi_id"`
	Type           string             `json:"type"`
	Products       []TransaksiProduct `json:"products"`
	SubtotalOngkir float64            `json:"subtotal_ongkir"`
	Total          float64            `json:"total"`
}

type TransaksiListItem struct {
	TransaksiID string    `json:"transaksi_id"`
	CreatedAt   time.Time `json:"created_at"`
	Total       float64   `json:"total"`
	TotalItem   int       `json:"total_item"`
	Status      string    `json:"status"`
}

type UpdateDraftInput struct {
	TransaksiID string  `json:"transaksi_id" binding:"required"`
	Total       float64 `json:"total" binding:"required"`
}

type UpdateCostInput struct {
	TransaksiID    string  `json:"transaksi_id" binding:"required"`
	SubtotalOngkir float64 `json:"subtotal_ongkir" binding:"required"`
}

type UpdateVerificationInput struct {
	TransaksiID    string `json:"transaksi_id" binding:"required"`
	IsVerification bool   `json:"is_verification"`
}

type UpdateDoneInput struct {
	TransaksiID string `json:"transaksi_id" binding:"required"`
	IsDone      bool   `json:"is_done"`
}

type UpdateCancelInput struct {
	TransaksiID string `json:"transaksi_id" binding:"required"`
	IsCancel    bool   `json:"is_cancel"`
	Type        string `json:"type" binding:"required,oneof=pembayaran transaksi"`
	Alasan      string `json:"alasan"`
}

type TransaksiService struct {
	db *gorm.DB
}

func NewTransaksiService(db *gorm.DB) *TransaksiService {
	return &TransaksiService{db: db}
}

// Create membuat transaksi + payment + detail dan mengurangi stok dalam
// satu transaction. Pengurangan stok bersyarat (total_stok >= qty):
// kalau tidak ada baris yang kena, seluruh checkout dibatalkan supaya
// stok tidak pernah minus walau ada checkout bersamaan.
func (s *TransaksiService) Create(in CreateTransaksiInput, userID string) (*CreateTransaksiResult, error) {
	now := time.Now()
	transaksiID := utils.GenerateID("#", now)
	paymentID := utils.GenerateID("PAY", now)

	subtotalProduk := 0.0
	for _, p := range in.Products {
		subtotalProduk += p.SubtotalProduk
	}

	transaksi := models.Transaksi{
		TransaksiID:    transaksiID,
		UserID:         userID,
		NoRekening:     in.Bank.NoRekening,
		AtasNama:       in.Bank.AtasNama,
		Bank:           in.Bank.Bank,
		Type:           models.TransaksiType(in.Type),
		SubtotalProduk: subtotalProduk,
		SubtotalOngkir: in.SubtotalOngkir,
		Total:          in.Total,
	}

	if in.Type == string(models.TypePickup) {
		var user models.User
		if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
			return nil, err
		}
		transaksi.NamaPenerima = user.Nama
		transaksi.NoTelpon = user.NoTelpon
		transaksi.Status = models.TransaksiPending
	} else {
		if in.Address == nil {
			return nil, utils.BadRequest("Address is required for delivery")
		}
		transaksi.NamaPenerima = in.Address.NamaPenerima
		transaksi.NoTelpon = in.Address.NoTelpon
		transaksi.Provinsi = in.Address.Provinsi
		transaksi.Kota = in.Address.Kota
		transaksi.Kecamatan = in.Address.Kecamatan
		transaksi.AlamatLengkap = in.Address.AlamatLengkap
		transaksi.KodePos = in.Address.KodePos
		transaksi.Status = models.TransaksiDraft
	}

	paymentStatus := models.PaymentPending
	if transaksi.Status == models.TransaksiDraft {
		paymentStatus = models.PaymentDraft
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, p := range in.Products {
			res := tx.Model(&models.Produk{}).
				Where("kode_item = ? AND total_stok >= ?", p.KodeItem, p.Quantity).
				UpdateColumn("total_stok", gorm.Expr("total_stok - ?", p.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return utils.UnprocessableEntity("Input stock exceeds total product stock.")
			}
		}

		if err := tx.Create(&transaksi).Error; err != nil {
			return err
		}

		if err := tx.Create(&models.Payment{
			PaymentID:   paymentID,
			TransaksiID: transaksiID,
			Status:      paymentStatus,
		}).Error; err != nil {
			return err
		}

		details := make([]models.TransaksiDetail, 0, len(in.Products))
		for _, p := range in.Products {
			details = append(details, models.TransaksiDetail{
				TransaksiID:    transaksiID,
				KodeItem:       p.KodeItem,
				Kategori:       p.Kategori,
				NamaProduk:     p.NamaProdukAsli,
				Harga:          p.Harga,
				Quantity:       p.Quantity,
				SubtotalProduk: p.SubtotalProduk,
			})
		}
		if err := tx.Create(&details).Error; err != nil {
			return err
		}

		if len(in.Carts) > 0 {
			if err := tx.Where("cart_id IN ? AND user_id = ?", in.Carts, userID).
				Delete(&models.Cart{}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateTransaksiResult{
		TransaksiID:    transaksiID,
		Type:           in.Type,
		Products:       in.Products,
		SubtotalOngkir: in.SubtotalOngkir,
		Total:          in.Total,
	}, nil
}

func (s *TransaksiService) FindAll(userID string) ([]TransaksiListItem, error) {
	var rows []models.Transaksi
	if err := s.db.
		Preload("Payment").
		Preload("Details").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]TransaksiListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, TransaksiListItem{
			TransaksiID: row.TransaksiID,
			CreatedAt:   row.CreatedAt,
			Total:       row.Total,
			TotalItem:   len(row.Details),
			Status:      StatusLabel(row.Payment.Status, row.Replied, row.Status, UserView),
		})
	}
	return items, nil
}

type TransaksiDetailView struct {
	models.Transaksi
	StatusLabel string                `json:"status_label"`
	Products    []TransaksiDetailLine `json:"products"`
}

type TransaksiDetailLine struct {
	NamaProduk     string         `json:"nama_produk"`
	KodeItem       string         `json:"kode_item"`
	Harga          float64        `json:"harga"`
	Kategori       string         `json:"kategori"`
	Quantity       int            `json:"quantity"`
	SubtotalProduk float64        `json:"subtotal_produk"`
	Image          []models.Image `json:"image"`
}

// FindOne mengembalikan detail transaksi berikut label status turunan.
func (s *TransaksiService) FindOne(transaksiID string, audience Audience) (*TransaksiDetailView, error) {
	var row models.Transaksi
	if err := s.db.
		Preload("Payment").
		Preload("Details.Produk.Image", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("transaksi_id = ?", transaksiID).
		First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("Transaction not found")
		}
		return nil, err
	}

	lines := make([]TransaksiDetailLine, 0, len(row.Details))
	for _, d := range row.Details {
		lines = append(lines, TransaksiDetailLine{
			NamaProduk:     d.NamaProduk,
			KodeItem:       d.KodeItem,
			Harga:          d.Harga,
			Kategori:       d.Kategori,
			Quantity:       d.Quantity,
			SubtotalProduk: d.SubtotalProduk,
			Image:          d.Produk.Image,
		})
	}

	view := &TransaksiDetailView{
		Transaksi:   row,
		StatusLabel: StatusLabel(row.Payment.Status, row.Replied, row.Status, audience),
		Products:    lines,
	}
	view.Details = nil
	return view, nil
}

// UpdateDraft: user menyetujui ongkir yang sudah diisi operator.
func (s *TransaksiService) UpdateDraft(in UpdateDraftInput) error {
	transaksi, err := s.findByID(in.TransaksiID)
	if err != nil {
		return err
	}

	if transaksi.Type != models.TypeDelivery {
		return utils.Forbidden("Forbidden resource")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaksi{}).
			Where("transaksi_id = ?", in.TransaksiID).
			Updates(map[string]interface{}{
				"total":  in.Total,
				"status": models.TransaksiPending,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Payment{}).
			Where("transaksi_id = ?", in.TransaksiID).
			Update("status", models.PaymentPending).Error
	})
}

// UpdateCost: operator mengisi ongkir, hanya untuk type delivery.
func (s *TransaksiService) UpdateCost(in UpdateCostInput) error {
	transaksi, err := s.findByID(in.TransaksiID)
	if err != nil {
		return err
	}

	if transaksi.Type != models.TypeDelivery {
		return utils.Forbidden("Forbidden resource")
	}

	return s.db.Model(&models.Transaksi{}).
		Where("transaksi_id = ?", in.TransaksiID).
		Updates(map[string]interface{}{
			"subtotal_ongkir": in.SubtotalOngkir,
			"replied":         true,
		}).Error
}

// UpdateVerification: verifikasi bukti transfer. is_verification false
// sengaja no-op, operator cukup tidak menyetujui.
func (s *TransaksiService) UpdateVerification(in UpdateVerificationInput) error {
	if _, err := s.findByID(in.TransaksiID); err != nil {
		return err
	}

	if !in.IsVerification {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaksi{}).
			Where("transaksi_id = ?", in.TransaksiID).
			Update("status", models.TransaksiProcess).Error; err != nil {
			return err
		}
		return tx.Model(&models.Payment{}).
			Where("transaksi_id = ?", in.TransaksiID).
			Update("status", models.PaymentDone).Error
	})
}

func (s *TransaksiService) UpdateDone(in UpdateDoneInput) error {
	if _, err := s.findByID(in.TransaksiID); err != nil {
		return err
	}

	if !in.IsDone {
		return nil
	}

	return s.db.Model(&models.Transaksi{}).
		Where("transaksi_id = ?", in.TransaksiID).
		Update("status", models.TransaksiDone).Error
}

// UpdateCancel membatalkan pembayaran atau transaksi, dipilih lewat
// discriminator type. Pembatalan transaksi tidak menyentuh status
// payment.
func (s *TransaksiService) UpdateCancel(in UpdateCancelInput) error {
	if _, err := s.findByID(in.TransaksiID); err != nil {
		return err
	}

	if !in.IsCancel {
		return nil
	}

	if in.Type == "pembayaran" {
		return s.db.Model(&models.Payment{}).
			Where("transaksi_id = ?", in.TransaksiID).
			Updates(map[string]interface{}{
				"status":  models.PaymentCanceled,
				"alasan":  in.Alasan,
				"expired": nil,
			}).Error
	}

	return s.db.Model(&models.Transaksi{}).
		Where("transaksi_id = ?", in.TransaksiID).
		Updates(map[string]interface{}{
			"status": models.TransaksiCanceled,
			"alasan": in.Alasan,
		}).Error
}

// SubmitProof menempelkan bukti transfer ke payment dan menandai paid.
// Expired 24 jam dari waktu upload.
func (s *TransaksiService) SubmitProof(transaksiID, url, nama, dari string) error {
	if _, err := s.findByID(transaksiID); err != nil {
		return err
	}

	expired := time.Now().Unix() + 24*60*60

	return s.db.Model(&models.Payment{}).
		Where("transaksi_id = ?", transaksiID).
		Updates(map[string]interface{}{
			"status":  models.PaymentPaid,
			"url":     url,
			"nama":    nama,
			"dari":    dari,
			"expired": expired,
			"metode":  "transfer",
		}).Error
}

func (s *TransaksiService) findByID(transaksiID string) (*models.Transaksi, error) {
	var transaksi models.Transaksi
	if err := s.db.Where("transaksi_id = ?", transaksiID).First(&transaksi).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("Transaction not found")
		}
		return nil, err
	}
	return &transaksi, nil
}

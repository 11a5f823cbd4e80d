package service

import (
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/models"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"gorm.io/gorm"
)

type CheckoutProduct struct {
	KodeItem string `json:"kode_item" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type CheckoutInput struct {
	Type     string            `json:"type" binding:"required,oneof=pickup delivery"`
	BankID   string            `json:"bank_id" binding:"required"`
	Products []CheckoutProduct `json:"products"`
	Carts    []string          `json:"carts"`
}

type CheckoutLine struct {
	KodeItem       string  `json:"kode_item"`
	NamaProdukAsli string  `json:"nama_produk_asli"`
	Kategori       string  `json:"kategori"`
	Harga          float64 `json:"harga"`
	Quantity       int     `json:"quantity"`
	SubtotalProduk float64 `json:"subtotal_produk"`
}

type CheckoutPreview struct {
	Type           string             `json:"type"`
	Products       []CheckoutLine     `json:"products"`
	SubtotalProduk float64            `json:"subtotal_produk"`
	SubtotalOngkir float64            `json:"subtotal_ongkir"`
	Total          float64            `json:"total"`
	Bank           models.BankAccount `json:"bank"`
}

type CheckoutService struct {
	db *gorm.DB
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{db: db}
}

// Preview menghitung rincian checkout tanpa menyimpan apapun. Harga
// diambil dari harga_6 produk saat ini; ongkir 0 karena baru diisi
// operator setelah transaksi dibuat (type delivery).
func (s *CheckoutService) Preview(in CheckoutInput, userID string) (*CheckoutPreview, error) {
	var bank models.BankAccount
	if err := s.db.Where("bank_id = ?", in.BankID).First(&bank).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("Bank account not found")
		}
		return nil, err
	}

	lines := make([]CheckoutLine, 0)

	if len(in.Carts) > 0 {
		var carts []models.Cart
		if err := s.db.Preload("Produk").
			Where("cart_id IN ? AND user_id = ?", in.Carts, userID).
			Find(&carts).Error; err != nil {
			return nil, err
		}
		if len(carts) != len(in.Carts) {
			return nil, utils.NotFound("Cart not found")
		}
		for _, cart := range carts {
			lines = append(lines, buildLine(cart.Produk, cart.Qty))
		}
	} else {
		if len(in.Products) == 0 {
			return nil, utils.BadRequest("Products or carts is required")
		}
		for _, p := range in.Products {
			var produk models.Produk
			if err := s.db.Where("kode_item = ?", p.KodeItem).First(&produk).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return nil, utils.NotFound("Product not found")
				}
				return nil, err
			}
			lines = append(lines, buildLine(produk, p.Quantity))
		}
	}

	subtotal := 0.0
	for _, line := range lines {
		subtotal += line.SubtotalProduk
	}

	const ongkir = 0.0

	return &CheckoutPreview{
		Type:           in.Type,
		Products:       lines,
		SubtotalProduk: subtotal,
		SubtotalOngkir: ongkir,
		Total:          subtotal + ongkir,
		Bank:           bank,
	}, nil
}

func buildLine(produk models.Produk, qty int) CheckoutLine {
	return CheckoutLine{
		KodeItem:       produk.KodeItem,
		NamaProdukAsli: produk.NamaProdukAsli,
		Kategori:       produk.Kategori,
		Harga:          produk.Harga6,
		Quantity:       qty,
		SubtotalProduk: produk.Harga6 * float64(qty),
	}
}
